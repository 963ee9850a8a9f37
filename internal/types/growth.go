package types

// GrowthMetric describes how one student's score for a component family
// moved between two consecutive observed grades.
type GrowthMetric struct {
	StudentID      string  `json:"student_id"`
	Component      string  `json:"component"`
	Subject        string  `json:"subject"`
	FromGrade      int     `json:"from_grade"`
	ToGrade        int     `json:"to_grade"`
	FromScore      float64 `json:"from_score"`
	ToScore        float64 `json:"to_score"`
	AbsoluteGrowth float64 `json:"absolute_growth"`
	PercentGrowth  float64 `json:"percent_growth"`
}

// ComponentGrowth computes the student's growth for a component code between
// consecutive observed grades of the same subject. Records without the
// component score are skipped.
func ComponentGrowth(s StudentLongitudinalData, subject, code string) []GrowthMetric {
	type point struct {
		grade int
		score float64
	}
	var points []point
	for _, rec := range s.Assessments {
		if rec.Subject != subject {
			continue
		}
		if v, ok := rec.ComponentScore(code); ok {
			points = append(points, point{grade: rec.Grade, score: v})
		}
	}
	var out []GrowthMetric
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.grade <= prev.grade {
			continue
		}
		m := GrowthMetric{
			StudentID:      s.ExternalID,
			Component:      code,
			Subject:        subject,
			FromGrade:      prev.grade,
			ToGrade:        cur.grade,
			FromScore:      prev.score,
			ToScore:        cur.score,
			AbsoluteGrowth: cur.score - prev.score,
		}
		if prev.score != 0 {
			m.PercentGrowth = (cur.score - prev.score) / prev.score * 100
		}
		out = append(out, m)
	}
	return out
}
