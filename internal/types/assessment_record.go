package types

import "strings"

// AssessmentRecord is one administration of one subject's test for one
// student: the component-code→score map plus the roll-up fields the vendor
// reported with it. Optional fields use pointers so "absent" and "zero" stay
// distinguishable after JSON round-trips.
type AssessmentRecord struct {
	Year             int                `json:"year"`
	Grade            int                `json:"grade"`
	Season           string             `json:"season,omitempty"`
	Subject          string             `json:"subject"`
	Provider         TestProvider       `json:"provider"`
	ComponentScores  map[string]float64 `json:"component_scores"`
	OverallScore     *float64           `json:"overall_score,omitempty"`
	ProficiencyLabel string             `json:"proficiency_label,omitempty"`
	Pass             *bool              `json:"pass,omitempty"`
}

// HasCompleteData reports whether the record carries both component scores
// and an overall score. Records failing this are still kept (single
// components may be usable) but are excluded from roll-up statistics.
func (r AssessmentRecord) HasCompleteData() bool {
	return len(r.ComponentScores) > 0 && r.OverallScore != nil
}

// ComponentScore looks up the score for a component code.
func (r AssessmentRecord) ComponentScore(code string) (float64, bool) {
	v, ok := r.ComponentScores[code]
	return v, ok
}

// Proficiency parses the record's proficiency label.
func (r AssessmentRecord) Proficiency() ProficiencyLevel {
	return ParseProficiencyLevel(r.ProficiencyLabel)
}

// IndicatesStruggle reports whether the record, on its own, marks the
// student as below the passing band: a "below"/"minimal" proficiency label
// or an explicit failed pass flag.
func (r AssessmentRecord) IndicatesStruggle() bool {
	label := strings.ToLower(r.ProficiencyLabel)
	if strings.Contains(label, "below") || strings.Contains(label, "minimal") {
		return true
	}
	if r.Pass != nil && !*r.Pass {
		return true
	}
	return false
}

// Matches reports whether the record is an administration of the given
// component's assessment (same grade, subject and provider).
func (r AssessmentRecord) Matches(id ComponentIdentifier) bool {
	return r.Grade == id.Grade && r.Subject == id.Subject && r.Provider == id.Provider
}
