package types

import "strings"

// ProficiencyLevel is the ordinal performance category assigned alongside a
// raw score. Higher values are better.
type ProficiencyLevel int

const (
	ProficiencyUnknown ProficiencyLevel = iota
	ProficiencyMinimal
	ProficiencyBelowBasic
	ProficiencyBasic
	ProficiencyPassing
	ProficiencyProficient
	ProficiencyAdvanced
)

var proficiencyNames = map[ProficiencyLevel]string{
	ProficiencyUnknown:    "Unknown",
	ProficiencyMinimal:    "Minimal",
	ProficiencyBelowBasic: "Below Basic",
	ProficiencyBasic:      "Basic",
	ProficiencyPassing:    "Passing",
	ProficiencyProficient: "Proficient",
	ProficiencyAdvanced:   "Advanced",
}

func (p ProficiencyLevel) String() string {
	if s, ok := proficiencyNames[p]; ok {
		return s
	}
	return "Unknown"
}

// IsStruggling reports whether the level indicates a student below the
// passing band.
func (p ProficiencyLevel) IsStruggling() bool {
	return p == ProficiencyMinimal || p == ProficiencyBelowBasic
}

// ParseProficiencyLevel maps the free-form labels found in vendor files onto
// the ordinal scale. Matching is case-insensitive and tolerant of extra
// whitespace; unrecognized labels map to ProficiencyUnknown.
func ParseProficiencyLevel(label string) ProficiencyLevel {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case s == "":
		return ProficiencyUnknown
	case strings.Contains(s, "below"):
		return ProficiencyBelowBasic
	case strings.Contains(s, "minimal"):
		return ProficiencyMinimal
	case strings.Contains(s, "advanced"):
		return ProficiencyAdvanced
	case strings.Contains(s, "proficient"):
		return ProficiencyProficient
	case strings.Contains(s, "passing") || strings.Contains(s, "pass"):
		return ProficiencyPassing
	case strings.Contains(s, "basic"):
		return ProficiencyBasic
	}
	return ProficiencyUnknown
}
