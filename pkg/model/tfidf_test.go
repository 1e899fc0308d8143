package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fitDocs = []string{
	"python machine learning pandas sql",
	"python django flask rest api",
	"java spring hibernate sql",
	"python machine learning tensorflow",
	"html css javascript react",
	"sql database indexing optimization",
}

func TestFitVectorizerPrunesRareTerms(t *testing.T) {
	v := FitVectorizer(fitDocs, VectorizerParams{MaxFeatures: 0, MinDocFreq: 2, MaxDocShare: 0.9})
	_, ok := v.Vocabulary["python"]
	assert.True(t, ok, "python appears in 3 docs")
	_, ok = v.Vocabulary["hibernate"]
	assert.False(t, ok, "hibernate appears in only 1 doc")
}

func TestFitVectorizerCapsVocabulary(t *testing.T) {
	v := FitVectorizer(fitDocs, VectorizerParams{MaxFeatures: 3, MinDocFreq: 1, MaxDocShare: 1})
	assert.Len(t, v.Vocabulary, 3)
	assert.Len(t, v.IDF, 3)
}

func TestFitVectorizerIncludesBigrams(t *testing.T) {
	v := FitVectorizer(fitDocs, VectorizerParams{MaxFeatures: 0, MinDocFreq: 2, MaxDocShare: 1})
	_, ok := v.Vocabulary["machine learning"]
	assert.True(t, ok)
}

func TestTransformDeterministicAndNormalized(t *testing.T) {
	v := FitVectorizer(fitDocs, DefaultVectorizerParams())
	a := v.Transform("python machine learning sql")
	b := v.Transform("python machine learning sql")
	require.Equal(t, a.Indices, b.Indices)
	require.Equal(t, a.Values, b.Values)

	var sum float64
	for _, x := range a.Values {
		sum += x * x
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestTransformOutOfVocabulary(t *testing.T) {
	v := FitVectorizer(fitDocs, DefaultVectorizerParams())
	vec := v.Transform("quantum basketweaving")
	assert.Zero(t, vec.NNZ())
	assert.Equal(t, v.Dim(), vec.Dim)
}

func TestVocabularyIndicesMatchIDF(t *testing.T) {
	v := FitVectorizer(fitDocs, DefaultVectorizerParams())
	for term, idx := range v.Vocabulary {
		require.Less(t, idx, len(v.IDF), "index for %q out of range", term)
		assert.Greater(t, v.IDF[idx], 0.0)
	}
}
