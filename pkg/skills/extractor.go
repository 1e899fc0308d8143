package skills

import (
	"regexp"
	"strings"
)

// Extractor scans resume text for known skills using word-boundary matching.
// Patterns are compiled once at construction; Extract is safe for concurrent use.
type Extractor struct {
	skills   []string
	patterns []*regexp.Regexp
}

// NewExtractor precompiles one pattern per skill in the registry universe.
// The universe is sorted, so extraction order is deterministic per process.
func NewExtractor(reg *Registry) *Extractor {
	universe := reg.Universe()
	e := &Extractor{
		skills:   universe,
		patterns: make([]*regexp.Regexp, len(universe)),
	}
	for i, s := range universe {
		// \b keeps "java" from matching inside "javascript"; multi-word
		// skills match as contiguous phrases.
		e.patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return e
}

// Extract returns every skill found in text, duplicate-free, in the
// extractor's stable order. Matching is done on the lower-cased raw text so
// skills containing digits ("civil 3d") survive.
func (e *Extractor) Extract(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, p := range e.patterns {
		if p.MatchString(lower) {
			found = append(found, e.skills[i])
		}
	}
	return found
}
