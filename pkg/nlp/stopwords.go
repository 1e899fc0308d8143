package nlp

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw string

// English stop-word set (populated in init, read-only after).
var stopWords map[string]struct{}

func init() {
	lines := strings.Split(stopwordsRaw, "\n")
	stopWords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the given token is an English stop word.
// Comparison is case-insensitive.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}
