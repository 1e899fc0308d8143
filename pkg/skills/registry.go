package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed skills.json
var defaultSkillsJSON []byte

// Registry is a read-only mapping from job category to its required skills.
// Built once at startup; safe for concurrent readers.
type Registry struct {
	categories []string
	required   map[string][]string
}

// Default returns the registry built from the embedded skill table.
func Default() *Registry {
	r, err := fromJSON(defaultSkillsJSON)
	if err != nil {
		// embedded data is part of the build; a parse failure is a programming error
		panic(fmt.Sprintf("skills: embedded table is invalid: %v", err))
	}
	return r
}

// LoadFile builds a registry from an external JSON file with the same shape
// as the embedded table. Lets the category set grow without a rebuild.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skills file: %w", err)
	}
	r, err := fromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse skills file %s: %w", path, err)
	}
	return r, nil
}

func fromJSON(data []byte) (*Registry, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	r := &Registry{required: make(map[string][]string, len(raw))}
	for cat, list := range raw {
		seen := make(map[string]struct{}, len(list))
		var dedup []string
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			dedup = append(dedup, s)
		}
		r.categories = append(r.categories, cat)
		r.required[cat] = dedup
	}
	sort.Strings(r.categories)
	return r, nil
}

// Categories returns all known categories in stable (alphabetical) order.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// Required returns the required-skill set for a category. Unknown categories
// yield an empty set: callers treat that as a 0% match, not an error.
func (r *Registry) Required(category string) []string {
	return r.required[category]
}

// Universe returns the union of skills across every category, sorted.
func (r *Registry) Universe() []string {
	set := make(map[string]struct{})
	for _, list := range r.required {
		for _, s := range list {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
