package types

import "sort"

// StudentLongitudinalData is everything the system knows about one student
// across years: their external identifier and every assessment record, kept
// sorted by (year, grade) ascending. The slice is sorted once at
// construction and never re-sorted afterwards, so "last two records" and
// "first year" reads are plain slice operations.
type StudentLongitudinalData struct {
	ExternalID   string             `json:"external_id"`
	Assessments  []AssessmentRecord `json:"assessments"`
	Demographics map[string]string  `json:"demographics,omitempty"`
}

// NewStudent builds a student record, sorting assessments by (year, grade).
func NewStudent(externalID string, assessments []AssessmentRecord) StudentLongitudinalData {
	sorted := make([]AssessmentRecord, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Grade < sorted[j].Grade
	})
	return StudentLongitudinalData{ExternalID: externalID, Assessments: sorted}
}

// ComponentScore returns the student's score for the component, taken from
// the first assessment matching the component's grade/subject/provider.
func (s StudentLongitudinalData) ComponentScore(id ComponentIdentifier) (float64, bool) {
	for _, rec := range s.Assessments {
		if !rec.Matches(id) {
			continue
		}
		if v, ok := rec.ComponentScore(id.Component); ok {
			return v, true
		}
	}
	return 0, false
}

// LastAssessments returns up to n of the student's most recent records.
func (s StudentLongitudinalData) LastAssessments(n int) []AssessmentRecord {
	if n <= 0 || len(s.Assessments) == 0 {
		return nil
	}
	if n > len(s.Assessments) {
		n = len(s.Assessments)
	}
	return s.Assessments[len(s.Assessments)-n:]
}

// FirstYear returns the earliest assessment year, or 0 when the student has
// no records.
func (s StudentLongitudinalData) FirstYear() int {
	if len(s.Assessments) == 0 {
		return 0
	}
	return s.Assessments[0].Year
}

// FirstYearOnly returns a copy of the student restricted to assessments from
// their earliest year. Used by backtesting to simulate what was knowable at
// intake time.
func (s StudentLongitudinalData) FirstYearOnly() StudentLongitudinalData {
	first := s.FirstYear()
	var kept []AssessmentRecord
	for _, rec := range s.Assessments {
		if rec.Year == first {
			kept = append(kept, rec)
		}
	}
	return StudentLongitudinalData{ExternalID: s.ExternalID, Assessments: kept, Demographics: s.Demographics}
}

// AssessmentsAfterYear returns the records strictly after the given year,
// preserving order.
func (s StudentLongitudinalData) AssessmentsAfterYear(year int) []AssessmentRecord {
	var out []AssessmentRecord
	for _, rec := range s.Assessments {
		if rec.Year > year {
			out = append(out, rec)
		}
	}
	return out
}
