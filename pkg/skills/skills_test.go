package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	require.NotEmpty(t, reg.Categories())
	assert.Contains(t, reg.Categories(), "Data Science")
	assert.Contains(t, reg.Required("Data Science"), "python")
	assert.Empty(t, reg.Required("No Such Role"))
}

func TestUniverseSortedAndUnique(t *testing.T) {
	u := Default().Universe()
	require.NotEmpty(t, u)
	seen := map[string]bool{}
	for i, s := range u {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
		if i > 0 {
			assert.LessOrEqual(t, u[i-1], s)
		}
	}
}

func TestExtractWholeWords(t *testing.T) {
	ex := NewExtractor(Default())

	found := ex.Extract("Built services in JavaScript and TypeScript.")
	assert.Contains(t, found, "javascript")
	assert.NotContains(t, found, "java")

	found = ex.Extract("Hands-on machine learning with pandas and SQL.")
	assert.Contains(t, found, "machine learning")
	assert.Contains(t, found, "pandas")
	assert.Contains(t, found, "sql")
}

func TestExtractDeterministicOrder(t *testing.T) {
	ex := NewExtractor(Default())
	text := "python sql docker kubernetes machine learning"
	first := ex.Extract(text)
	second := ex.Extract(text)
	assert.Equal(t, first, second)
}

func TestExtractEmpty(t *testing.T) {
	ex := NewExtractor(Default())
	assert.Empty(t, ex.Extract(""))
	assert.Empty(t, ex.Extract("nothing relevant here"))
}

func TestCalculateMatchEmptyExtracted(t *testing.T) {
	reg := Default()
	m := reg.CalculateMatch(nil, "Data Science")
	assert.Zero(t, m.Percentage)
	assert.Empty(t, m.Matched)
	assert.Len(t, m.Missing, len(reg.Required("Data Science")))
}

func TestCalculateMatchPartial(t *testing.T) {
	reg := Default()
	m := reg.CalculateMatch([]string{"python", "sql"}, "Data Science")
	assert.Greater(t, m.Percentage, 0.0)
	assert.Contains(t, m.Matched, "python")
	assert.Contains(t, m.Matched, "sql")
	assert.NotContains(t, m.Missing, "python")
}

func TestCalculateMatchUnknownCategory(t *testing.T) {
	m := Default().CalculateMatch([]string{"python"}, "Astronaut")
	assert.Zero(t, m.Percentage)
	assert.Empty(t, m.Matched)
	assert.Empty(t, m.Missing)
}
