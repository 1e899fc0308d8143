package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiny linearly separable corpus: class 0 = data work, class 1 = frontend
func trainFixture(t *testing.T) (*Vectorizer, []FeatureVector, []int) {
	t.Helper()
	docs := []string{
		"python pandas sql statistics",
		"python machine learning sql",
		"pandas numpy statistics python",
		"html css react javascript",
		"css javascript react webpack",
		"html react javascript css",
	}
	labels := []int{0, 0, 0, 1, 1, 1}
	v := FitVectorizer(docs, VectorizerParams{MaxFeatures: 0, MinDocFreq: 1, MaxDocShare: 1})
	vecs := make([]FeatureVector, len(docs))
	for i, d := range docs {
		vecs[i] = v.Transform(d)
	}
	return v, vecs, labels
}

func TestTrainClassifierSeparates(t *testing.T) {
	v, vecs, labels := trainFixture(t)
	cfg := DefaultTrainConfig()
	cfg.MaxEpochs = 300
	m := TrainClassifier(vecs, labels, 2, cfg)

	assert.Equal(t, 0, m.Predict(v.Transform("python sql pandas")))
	assert.Equal(t, 1, m.Predict(v.Transform("react css html")))
}

func TestPredictProbaIsDistribution(t *testing.T) {
	v, vecs, labels := trainFixture(t)
	m := TrainClassifier(vecs, labels, 2, DefaultTrainConfig())

	probs := m.PredictProba(v.Transform("python machine learning"))
	require.Len(t, probs, 2)
	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestTrainReproducible(t *testing.T) {
	_, vecs, labels := trainFixture(t)
	cfg := DefaultTrainConfig()
	cfg.MaxEpochs = 50
	a := TrainClassifier(vecs, labels, 2, cfg)
	b := TrainClassifier(vecs, labels, 2, cfg)
	assert.Equal(t, a.Bias, b.Bias)
	assert.Equal(t, a.Weights, b.Weights)
}

func TestBalancedClassWeights(t *testing.T) {
	w := balancedClassWeights([]int{0, 0, 0, 1}, 2)
	// minority class gets the larger weight
	assert.Greater(t, w[1], w[0])
	assert.Zero(t, balancedClassWeights([]int{0}, 2)[1])
}

func TestLabelEncoder(t *testing.T) {
	e := NewLabelEncoder([]string{"Sales", "HR", "Sales", "Data Science"})
	require.Equal(t, 3, e.Len())
	assert.Equal(t, []string{"Data Science", "HR", "Sales"}, e.Classes)

	i, ok := e.Encode("HR")
	require.True(t, ok)
	assert.Equal(t, "HR", e.Decode(i))

	_, ok = e.Encode("Astronaut")
	assert.False(t, ok)
}
