package model

import (
	"math"
	"math/rand"
)

// TrainConfig controls the logistic-regression fit.
type TrainConfig struct {
	MaxEpochs    int     `json:"max_epochs"`
	LearningRate float64 `json:"learning_rate"`
	L2           float64 `json:"l2"`
	Tolerance    float64 `json:"tolerance"`
	Seed         int64   `json:"seed"`
}

// DefaultTrainConfig mirrors the offline fit the artifacts ship with:
// a generous iteration cap, light L2 regularization and a fixed seed so
// training is reproducible.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		MaxEpochs:    2000,
		LearningRate: 0.5,
		L2:           1e-4,
		Tolerance:    1e-5,
		Seed:         42,
	}
}

// Classifier is a multinomial (softmax) logistic-regression model over
// sparse TF-IDF features. Weights are immutable after training; PredictProba
// is pure and safe for concurrent use.
type Classifier struct {
	// Weights[c] holds the per-feature weights of class c.
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// NumClasses returns the number of categories the model predicts.
func (m *Classifier) NumClasses() int { return len(m.Bias) }

// Dim returns the expected feature-vector dimension.
func (m *Classifier) Dim() int {
	if len(m.Weights) == 0 {
		return 0
	}
	return len(m.Weights[0])
}

// PredictProba returns one probability per class, in label-index order,
// non-negative and summing to 1.
func (m *Classifier) PredictProba(v FeatureVector) []float64 {
	scores := make([]float64, m.NumClasses())
	copy(scores, m.Bias)
	for c := range scores {
		row := m.Weights[c]
		for i, idx := range v.Indices {
			scores[c] += row[idx] * v.Values[i]
		}
	}
	return softmax(scores)
}

// Predict returns the index of the most probable class.
func (m *Classifier) Predict(v FeatureVector) int {
	probs := m.PredictProba(v)
	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}
	return best
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// TrainClassifier fits a class-balanced softmax regression with SGD.
// Class weights follow the balanced heuristic n/(k*count_c) so rare
// categories are not drowned out. Training stops early once the epoch loss
// stabilizes within cfg.Tolerance.
func TrainClassifier(vectors []FeatureVector, labels []int, numClasses int, cfg TrainConfig) *Classifier {
	dim := 0
	if len(vectors) > 0 {
		dim = vectors[0].Dim
	}
	m := &Classifier{
		Weights: make([][]float64, numClasses),
		Bias:    make([]float64, numClasses),
	}
	for c := range m.Weights {
		m.Weights[c] = make([]float64, dim)
	}
	if len(vectors) == 0 {
		return m
	}

	classWeight := balancedClassWeights(labels, numClasses)
	rng := rand.New(rand.NewSource(cfg.Seed))
	order := rng.Perm(len(vectors))

	prevLoss := math.Inf(1)
	for epoch := 0; epoch < cfg.MaxEpochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		lr := cfg.LearningRate / (1 + 0.01*float64(epoch))

		var loss float64
		for _, i := range order {
			v, y := vectors[i], labels[i]
			w := classWeight[y]
			probs := m.PredictProba(v)
			loss += -w * math.Log(math.Max(probs[y], 1e-12))

			for c := 0; c < numClasses; c++ {
				grad := probs[c]
				if c == y {
					grad -= 1
				}
				grad *= w
				m.Bias[c] -= lr * grad
				row := m.Weights[c]
				for i, idx := range v.Indices {
					row[idx] -= lr * grad * v.Values[i]
				}
			}
		}
		loss /= float64(len(vectors))

		if cfg.L2 > 0 {
			decay := 1 - cfg.LearningRate*cfg.L2
			for c := range m.Weights {
				row := m.Weights[c]
				for idx := range row {
					row[idx] *= decay
				}
			}
		}

		if math.Abs(prevLoss-loss) < cfg.Tolerance {
			break
		}
		prevLoss = loss
	}
	return m
}

func balancedClassWeights(labels []int, numClasses int) []float64 {
	counts := make([]float64, numClasses)
	for _, y := range labels {
		counts[y]++
	}
	n := float64(len(labels))
	k := float64(numClasses)
	weights := make([]float64, numClasses)
	for c := range weights {
		if counts[c] == 0 {
			weights[c] = 0
			continue
		}
		weights[c] = n / (k * counts[c])
	}
	return weights
}
