package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonLetter = regexp.MustCompile(`[^a-zA-Z ]`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// Clean canonicalizes raw resume text for the vectorizer:
// - lower-cases everything
// - replaces every character outside [a-zA-Z ] with a space
//   (so "C++" becomes "c", never fused with a neighbour token)
// - collapses whitespace runs
// - drops English stop words
func Clean(s string) string {
	s = strings.ToLower(s)
	s = reNonLetter.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	words := strings.Split(strings.TrimSpace(s), " ")
	kept := words[:0]
	for _, w := range words {
		if w == "" || IsStopWord(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Tokens splits an already-cleaned string into its tokens.
func Tokens(cleaned string) []string {
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}
