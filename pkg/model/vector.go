package model

import "math"

// FeatureVector is a sparse vector over the fitted vocabulary. Only non-zero
// weights are stored; Indices are strictly ascending so every dot product
// accumulates in the same order and stays bit-for-bit deterministic.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// L2Normalize scales the vector to unit euclidean length in place.
// A zero vector is left untouched.
func (v FeatureVector) L2Normalize() {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v.Values {
		v.Values[i] /= norm
	}
}

// NNZ returns the number of stored (non-zero) elements.
func (v FeatureVector) NNZ() int { return len(v.Indices) }
