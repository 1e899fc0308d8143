package nlp

import "strings"

// ContainsPhrase checks for a whole-word occurrence of phrase inside text.
// Both arguments must already be lower-cased/normalized the same way.
// Example: "rest api" is found in " ... rest api ..." but not in "rest apis".
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	// pad with spaces so word boundaries are explicit
	hay := " " + text + " "
	needle := " " + phrase + " "
	return strings.Contains(hay, needle)
}
