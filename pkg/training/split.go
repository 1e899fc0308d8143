package training

import (
	"math/rand"
	"sort"
)

// StratifiedSplit partitions samples into train and test sets, holding out
// testShare of each category so rare classes appear on both sides.
// The split is seeded and therefore reproducible.
func StratifiedSplit(samples []Sample, testShare float64, seed int64) (train, test []Sample) {
	byCategory := make(map[string][]int)
	for i, s := range samples {
		byCategory[s.Category] = append(byCategory[s.Category], i)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rng := rand.New(rand.NewSource(seed))
	for _, c := range categories {
		idxs := byCategory[c]
		rng.Shuffle(len(idxs), func(i, j int) { idxs[i], idxs[j] = idxs[j], idxs[i] })
		nTest := int(float64(len(idxs)) * testShare)
		// keep at least one training sample per category
		if nTest >= len(idxs) {
			nTest = len(idxs) - 1
		}
		for k, idx := range idxs {
			if k < nTest {
				test = append(test, samples[idx])
			} else {
				train = append(train, samples[idx])
			}
		}
	}
	return train, test
}
