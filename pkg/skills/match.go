package skills

import "sort"

// Match is the outcome of comparing extracted resume skills against the
// required-skill set of one category.
type Match struct {
	Percentage float64
	Matched    []string
	Missing    []string
}

// CalculateMatch computes the share of a category's required skills present
// in the extracted set. Unknown categories and empty required sets yield 0%.
// Matched/Missing come back sorted for stable output.
func (r *Registry) CalculateMatch(extracted []string, category string) Match {
	required := r.Required(category)
	if len(required) == 0 {
		return Match{}
	}
	have := make(map[string]struct{}, len(extracted))
	for _, s := range extracted {
		have[s] = struct{}{}
	}
	var m Match
	for _, s := range required {
		if _, ok := have[s]; ok {
			m.Matched = append(m.Matched, s)
		} else {
			m.Missing = append(m.Missing, s)
		}
	}
	sort.Strings(m.Matched)
	sort.Strings(m.Missing)
	m.Percentage = float64(len(m.Matched)) / float64(len(required)) * 100
	return m
}
