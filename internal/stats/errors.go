package stats

import "errors"

// ErrInsufficientData is returned when a computation is asked to run on a
// sample smaller than its configured floor. Bulk callers skip the offending
// pair or component rather than aborting the run.
var ErrInsufficientData = errors.New("insufficient data for statistical computation")
