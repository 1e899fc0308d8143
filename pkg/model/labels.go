package model

import "sort"

// LabelEncoder fixes the category-to-index mapping the classifier was
// trained with. Classes are stored sorted, matching index order.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// NewLabelEncoder builds an encoder over the unique labels, sorted.
func NewLabelEncoder(labels []string) *LabelEncoder {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	classes := make([]string, 0, len(set))
	for l := range set {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	return &LabelEncoder{Classes: classes}
}

// Encode returns the index of a label; ok is false for unknown labels.
func (e *LabelEncoder) Encode(label string) (int, bool) {
	i := sort.SearchStrings(e.Classes, label)
	if i < len(e.Classes) && e.Classes[i] == label {
		return i, true
	}
	return 0, false
}

// Decode returns the label at index i.
func (e *LabelEncoder) Decode(i int) string { return e.Classes[i] }

// Len returns the number of known classes.
func (e *LabelEncoder) Len() int { return len(e.Classes) }
