package types

// StudentOutcomes is the proficient/struggling partition of a training
// population, computed once per training run.
type StudentOutcomes struct {
	Proficient map[string]bool `json:"proficient"`
	Struggling map[string]bool `json:"struggling"`
}

// IsStruggling reports which side of the partition the student fell on.
func (o StudentOutcomes) IsStruggling(studentID string) bool {
	return o.Struggling[studentID]
}

// Size returns the number of classified students.
func (o StudentOutcomes) Size() int {
	return len(o.Proficient) + len(o.Struggling)
}
