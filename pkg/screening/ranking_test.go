package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfit/screening/pkg/skills"
)

func TestRankOrdersByProbability(t *testing.T) {
	reg := skills.Default()
	probs := []CategoryProb{
		{"Java Developer", 0.3},
		{"Data Science", 0.6},
		{"HR", 0.1},
	}
	recs := Rank(reg, probs, nil, 3)
	require.Len(t, recs, 3)
	assert.Equal(t, "Data Science", recs[0].Role)
	assert.Equal(t, "Java Developer", recs[1].Role)
	assert.Equal(t, "HR", recs[2].Role)
}

func TestRankTopOne(t *testing.T) {
	reg := skills.Default()
	probs := []CategoryProb{{"Sales", 0.2}, {"HR", 0.8}}
	recs := Rank(reg, probs, nil, 1)
	require.Len(t, recs, 1)
	assert.Equal(t, "HR", recs[0].Role)
}

func TestRankTieBreaksByName(t *testing.T) {
	reg := skills.Default()
	probs := []CategoryProb{{"Sales", 0.5}, {"HR", 0.5}}
	recs := Rank(reg, probs, nil, 2)
	assert.Equal(t, "HR", recs[0].Role)
	assert.Equal(t, "Sales", recs[1].Role)
}

func TestRankSkillMatchAndMissingOnlyForTop(t *testing.T) {
	reg := skills.Default()
	probs := []CategoryProb{
		{"Data Science", 0.7},
		{"Python Developer", 0.3},
	}
	recs := Rank(reg, probs, []string{"python", "sql"}, 2)
	require.Len(t, recs, 2)

	assert.Greater(t, recs[0].SkillMatch, 0.0)
	assert.Contains(t, recs[0].MatchedSkills, "python")
	assert.NotEmpty(t, recs[0].MissingSkills)
	assert.LessOrEqual(t, len(recs[0].MissingSkills), 5)

	assert.Empty(t, recs[1].MissingSkills)
	assert.NotEmpty(t, recs[1].MatchedSkills)
}

func TestRankPreviewCap(t *testing.T) {
	reg := skills.Default()
	all := reg.Required("Data Science")
	recs := Rank(reg, []CategoryProb{{"Data Science", 1}}, all, 1)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].MatchedSkills, 5)
	assert.Equal(t, 100.0, recs[0].SkillMatch)
}

func TestPickBestFitWeighting(t *testing.T) {
	recs := []Recommendation{
		{Role: "A", Confidence: 0.9, SkillMatch: 0},
		{Role: "B", Confidence: 0.5, SkillMatch: 100},
	}
	best := PickBestFit(recs)
	// 0.7*0.5 + 0.3*1.0 = 0.65 beats 0.7*0.9 = 0.63
	assert.Equal(t, "B", best.Role)
	assert.InDelta(t, 0.65, best.CombinedScore, 1e-9)
	assert.Contains(t, best.Reason, "50%")
	assert.Contains(t, best.Reason, "100%")
}

func TestPickBestFitTieKeepsFirst(t *testing.T) {
	recs := []Recommendation{
		{Role: "First", Confidence: 0.6, SkillMatch: 50},
		{Role: "Second", Confidence: 0.6, SkillMatch: 50},
	}
	assert.Equal(t, "First", PickBestFit(recs).Role)
}

func TestPickBestFitEmpty(t *testing.T) {
	assert.Zero(t, PickBestFit(nil))
}
