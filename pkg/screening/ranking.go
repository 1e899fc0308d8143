package screening

import (
	"fmt"
	"math"
	"sort"

	"github.com/careerfit/screening/pkg/skills"
)

const (
	// DefaultTopN is how many roles a screening surfaces.
	DefaultTopN = 3
	// preview cap for matched/missing skill lists
	skillPreviewLimit = 5

	confidenceWeight = 0.7
	skillMatchWeight = 0.3
)

// Rank sorts categories by probability (descending, ties broken by category
// name ascending so ranking is deterministic), keeps the top n and attaches
// skill-match figures from the registry. Missing skills are computed for
// every candidate but exposed only on the first recommendation.
func Rank(reg *skills.Registry, probs []CategoryProb, extracted []string, n int) []Recommendation {
	ranked := make([]CategoryProb, len(probs))
	copy(ranked, probs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Prob != ranked[j].Prob {
			return ranked[i].Prob > ranked[j].Prob
		}
		return ranked[i].Category < ranked[j].Category
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}

	recs := make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		m := reg.CalculateMatch(extracted, ranked[i].Category)
		rec := Recommendation{
			Role:          ranked[i].Category,
			Confidence:    ranked[i].Prob,
			SkillMatch:    m.Percentage,
			MatchedSkills: preview(m.Matched),
		}
		if i == 0 {
			rec.MissingSkills = preview(m.Missing)
		} else {
			rec.MissingSkills = []string{}
		}
		recs = append(recs, rec)
	}
	return recs
}

// PickBestFit blends confidence and skill match 70/30 over the ranked
// candidates. Only a strictly greater combined score displaces the current
// winner, so an exact tie keeps the earlier (higher-confidence) entry.
func PickBestFit(recs []Recommendation) BestFit {
	if len(recs) == 0 {
		return BestFit{}
	}
	best := recs[0]
	bestScore := combinedScore(best)
	for _, rec := range recs[1:] {
		if s := combinedScore(rec); s > bestScore {
			best, bestScore = rec, s
		}
	}
	return BestFit{
		Role:          best.Role,
		CombinedScore: bestScore,
		Reason: fmt.Sprintf("%.0f%% model confidence combined with %.0f%% skill match",
			math.Round(best.Confidence*100), math.Round(best.SkillMatch)),
	}
}

func combinedScore(r Recommendation) float64 {
	return confidenceWeight*r.Confidence + skillMatchWeight*(r.SkillMatch/100)
}

func preview(list []string) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > skillPreviewLimit {
		return list[:skillPreviewLimit]
	}
	return list
}
