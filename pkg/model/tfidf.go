package model

import (
	"math"
	"sort"

	"github.com/careerfit/screening/pkg/nlp"
)

// VectorizerParams are the fit-time settings of the TF-IDF transform.
type VectorizerParams struct {
	MaxFeatures int     `json:"max_features"`
	MinDocFreq  int     `json:"min_doc_freq"`
	MaxDocShare float64 `json:"max_doc_share"`
}

// DefaultVectorizerParams mirror the settings the model was tuned with:
// unigrams+bigrams, 7000-term cap, terms in <2 docs or >90% of docs pruned.
func DefaultVectorizerParams() VectorizerParams {
	return VectorizerParams{MaxFeatures: 7000, MinDocFreq: 2, MaxDocShare: 0.9}
}

// Vectorizer maps cleaned text to a fixed-dimension sparse TF-IDF vector.
// Vocabulary and IDF weights are immutable after Fit; Transform is pure and
// safe for concurrent use.
type Vectorizer struct {
	Params     VectorizerParams `json:"params"`
	Vocabulary map[string]int   `json:"vocabulary"`
	IDF        []float64        `json:"idf"`
}

// Dim returns the vector dimension fixed at fit time.
func (v *Vectorizer) Dim() int { return len(v.IDF) }

// terms produces unigrams and bigrams of a cleaned document.
func terms(cleaned string) []string {
	tokens := nlp.Tokens(cleaned)
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// FitVectorizer learns a vocabulary and IDF weights from cleaned documents.
// Document-frequency pruning runs first, then the corpus-frequency cap, and
// indices are assigned in alphabetical term order so the mapping is stable.
func FitVectorizer(docs []string, params VectorizerParams) *Vectorizer {
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int64)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range terms(doc) {
			corpusFreq[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	maxDF := int(params.MaxDocShare * float64(len(docs)))
	kept := make([]string, 0, len(docFreq))
	for t, df := range docFreq {
		if df < params.MinDocFreq {
			continue
		}
		if maxDF > 0 && df > maxDF {
			continue
		}
		kept = append(kept, t)
	}

	if params.MaxFeatures > 0 && len(kept) > params.MaxFeatures {
		// keep the most frequent terms; ties resolved alphabetically
		sort.Slice(kept, func(i, j int) bool {
			if corpusFreq[kept[i]] != corpusFreq[kept[j]] {
				return corpusFreq[kept[i]] > corpusFreq[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:params.MaxFeatures]
	}
	sort.Strings(kept)

	v := &Vectorizer{
		Params:     params,
		Vocabulary: make(map[string]int, len(kept)),
		IDF:        make([]float64, len(kept)),
	}
	n := float64(len(docs))
	for i, t := range kept {
		v.Vocabulary[t] = i
		// smoothed IDF: ln((1+n)/(1+df)) + 1
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// Transform converts cleaned text into an L2-normalized TF-IDF vector.
// Out-of-vocabulary terms contribute zero weight.
func (v *Vectorizer) Transform(cleaned string) FeatureVector {
	counts := make(map[int]float64)
	for _, t := range terms(cleaned) {
		if idx, ok := v.Vocabulary[t]; ok {
			counts[idx]++
		}
	}
	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = counts[idx] * v.IDF[idx]
	}
	vec := FeatureVector{Dim: v.Dim(), Indices: indices, Values: values}
	vec.L2Normalize()
	return vec
}
