package earlywarning

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/student-analysis-system/internal/types"
)

// GenerateWarnings evaluates one student (typically a single observed year)
// against every trained threshold and assembles the early-warning report:
// per-component warnings, graded risk factors, the overall risk roll-up and
// the derived interventions. Fails with ErrNotTrained before training.
func (s *System) GenerateWarnings(student types.StudentLongitudinalData) (types.EarlyWarningReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.trained {
		return types.EarlyWarningReport{}, ErrNotTrained
	}

	report := types.EarlyWarningReport{
		ReportID:    uuid.NewString(),
		StudentID:   student.ExternalID,
		GeneratedAt: time.Now().UTC(),
		OverallRisk: types.RiskLow,
	}

	for _, thr := range s.thresholds {
		score, ok := student.ComponentScore(thr.Component)
		if !ok || score >= thr.RiskThreshold {
			continue
		}

		severity := types.RiskHigh
		if score < thr.RiskThreshold*s.cfg.CriticalRiskMultiplier {
			severity = types.RiskCritical
		}
		report.Warnings = append(report.Warnings, types.Warning{
			Component: thr.Component,
			Score:     score,
			Threshold: thr.RiskThreshold,
			Severity:  severity,
			Message: fmt.Sprintf("%s score %.1f is below the risk threshold %.1f",
				thr.Component.Key(), score, thr.RiskThreshold),
		})
		report.RiskFactors = append(report.RiskFactors, riskFactor(thr, score))
		report.Growth = append(report.Growth,
			types.ComponentGrowth(student, thr.Component.Subject, thr.Component.Component)...)
	}

	report.OverallRisk = overallRisk(report.RiskFactors)
	report.Interventions = deriveInterventions(report.Warnings)
	return report, nil
}

// riskFactor grades the relative gap between the score and its threshold.
func riskFactor(thr types.ComponentThreshold, score float64) types.RiskFactor {
	gap := thr.RiskThreshold - score
	ratio := 0.0
	if thr.RiskThreshold > 0 {
		ratio = gap / thr.RiskThreshold
	}

	severity := types.RiskLow
	switch {
	case ratio > 0.30:
		severity = types.RiskCritical
	case ratio > 0.20:
		severity = types.RiskHigh
	case ratio > 0.10:
		severity = types.RiskModerate
	}

	return types.RiskFactor{
		Component: thr.Component,
		Gap:       gap,
		GapRatio:  ratio,
		Severity:  severity,
	}
}

// overallRisk rolls risk factors up to a single level: critical needs two
// critical factors, or one critical with two high; one critical or two high
// is high; a single high is moderate.
func overallRisk(factors []types.RiskFactor) types.RiskLevel {
	var critical, high int
	for _, f := range factors {
		switch f.Severity {
		case types.RiskCritical:
			critical++
		case types.RiskHigh:
			high++
		}
	}

	switch {
	case critical >= 2 || (critical == 1 && high >= 2):
		return types.RiskCritical
	case critical >= 1 || high >= 2:
		return types.RiskHigh
	case high >= 1:
		return types.RiskModerate
	}
	return types.RiskLow
}

// deriveInterventions maps warning counts to recommended actions: two or
// more flagged components in one subject escalate to intensive small-group
// work, a single flag gets targeted tutoring, and three or more total
// warnings add a daily practice routine.
func deriveInterventions(warnings []types.Warning) []types.Intervention {
	if len(warnings) == 0 {
		return nil
	}

	perSubject := make(map[string]int)
	for _, w := range warnings {
		perSubject[w.Component.Subject]++
	}
	subjects := make([]string, 0, len(perSubject))
	for subject := range perSubject {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	var out []types.Intervention
	for _, subject := range subjects {
		if perSubject[subject] >= 2 {
			out = append(out, types.Intervention{
				Subject:     subject,
				Kind:        types.InterventionIntensiveSmallGroup,
				Description: fmt.Sprintf("Intensive small-group instruction in %s", subject),
			})
		} else {
			out = append(out, types.Intervention{
				Subject:     subject,
				Kind:        types.InterventionTargetedTutoring,
				Description: fmt.Sprintf("Targeted tutoring in %s", subject),
			})
		}
	}

	if len(warnings) >= 3 {
		out = append(out, types.Intervention{
			Kind:        types.InterventionDailyPractice,
			Description: "Daily practice routine across flagged areas",
		})
	}
	return out
}
