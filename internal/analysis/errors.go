package analysis

import "errors"

// ErrEmptyPopulation is returned by population-level operations handed zero
// students. Unlike per-pair failures, this one always surfaces.
var ErrEmptyPopulation = errors.New("analysis: empty student population")

// ErrInvalidSplit is returned when a train/test split ratio, or the
// population it is applied to, cannot produce both a training and a test
// set.
var ErrInvalidSplit = errors.New("analysis: invalid train/test split")
