package correlation

import (
	"sort"

	"github.com/yungbote/student-analysis-system/internal/types"
)

// DiscoverComponents scans every assessment of every student once and
// returns the distinct set of component identifiers present, sorted by
// (grade, component code). The result is the data-driven analysis universe
// handed to every downstream stage; there is no fixed schema.
func DiscoverComponents(population []types.StudentLongitudinalData) []types.ComponentIdentifier {
	seen := make(map[types.ComponentIdentifier]struct{})
	for _, student := range population {
		for _, rec := range student.Assessments {
			for code := range rec.ComponentScores {
				id := types.ComponentIdentifier{
					Grade:     rec.Grade,
					Subject:   rec.Subject,
					Component: code,
					Provider:  rec.Provider,
				}
				seen[id] = struct{}{}
			}
		}
	}

	universe := make([]types.ComponentIdentifier, 0, len(seen))
	for id := range seen {
		universe = append(universe, id)
	}
	sort.Slice(universe, func(i, j int) bool {
		return universe[i].Less(universe[j])
	})
	return universe
}
