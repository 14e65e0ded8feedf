package suggest

import (
	"sort"
)

// MinScore is the similarity below which a candidate is not suggested.
const MinScore = 0.5

// Closest returns up to limit candidates that resemble name, best first.
// Ties are broken alphabetically so the result is deterministic.
func Closest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		score := Similarity(name, c)
		if score < MinScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.name)
	}

	return result
}
