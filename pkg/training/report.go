package training

import (
	"fmt"
	"sort"
	"strings"
)

// ClassMetrics are precision/recall/F1 for one category.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is an evaluation summary over a labelled sample set.
type Report struct {
	Accuracy float64
	Total    int
	Correct  int
	PerClass map[string]*ClassMetrics

	truePos  map[string]int
	falsePos map[string]int
}

func newReport(classes []string) *Report {
	r := &Report{
		PerClass: make(map[string]*ClassMetrics, len(classes)),
		truePos:  make(map[string]int),
		falsePos: make(map[string]int),
	}
	for _, c := range classes {
		r.PerClass[c] = &ClassMetrics{}
	}
	return r
}

func (r *Report) observe(actual, predicted string) {
	r.Total++
	if m, ok := r.PerClass[actual]; ok {
		m.Support++
	} else {
		r.PerClass[actual] = &ClassMetrics{Support: 1}
	}
	if actual == predicted {
		r.Correct++
		r.truePos[actual]++
	} else {
		r.falsePos[predicted]++
	}
}

func (r *Report) finish() {
	if r.Total > 0 {
		r.Accuracy = float64(r.Correct) / float64(r.Total)
	}
	for c, m := range r.PerClass {
		tp := float64(r.truePos[c])
		fp := float64(r.falsePos[c])
		fn := float64(m.Support) - tp
		if tp+fp > 0 {
			m.Precision = tp / (tp + fp)
		}
		if tp+fn > 0 {
			m.Recall = tp / (tp + fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
	}
}

// String renders the report as a fixed-width table, one row per category.
func (r *Report) String() string {
	classes := make([]string, 0, len(r.PerClass))
	for c := range r.PerClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %9s %9s %9s %9s\n", "category", "precision", "recall", "f1", "support")
	for _, c := range classes {
		m := r.PerClass[c]
		fmt.Fprintf(&b, "%-40s %9.3f %9.3f %9.3f %9d\n", c, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy: %.4f (%d/%d)\n", r.Accuracy, r.Correct, r.Total)
	return b.String()
}
