package earlywarning

import (
	"github.com/yungbote/student-analysis-system/internal/types"
)

// ClassifyOutcomes partitions a population into future-proficient and
// future-struggling students. A student is struggling when either of their
// two most recent assessment records carries a "below"/"minimal" proficiency
// label or an explicit failed pass flag; everyone else with at least one
// record is proficient. Students with no records are left out of the
// partition entirely.
func ClassifyOutcomes(population []types.StudentLongitudinalData) types.StudentOutcomes {
	outcomes := types.StudentOutcomes{
		Proficient: make(map[string]bool),
		Struggling: make(map[string]bool),
	}
	for _, student := range population {
		recent := student.LastAssessments(2)
		if len(recent) == 0 {
			continue
		}
		if anyIndicatesStruggle(recent) {
			outcomes.Struggling[student.ExternalID] = true
		} else {
			outcomes.Proficient[student.ExternalID] = true
		}
	}
	return outcomes
}

// RecordsIndicateStruggle applies the outcome rule to an arbitrary record
// slice. Backtesting uses it against the records observed after a student's
// first year.
func RecordsIndicateStruggle(records []types.AssessmentRecord) bool {
	return anyIndicatesStruggle(records)
}

func anyIndicatesStruggle(records []types.AssessmentRecord) bool {
	for _, rec := range records {
		if rec.IndicatesStruggle() {
			return true
		}
	}
	return false
}
