package training

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sample is one labelled resume.
type Sample struct {
	Category string
	Text     string
}

// expected CSV column headers (case-insensitive)
const (
	categoryColumn = "category"
	textColumn     = "resume_text"
)

// LoadDataset reads a labelled resume CSV. The file must carry a header row
// with "category" and "resume_text" columns; empty rows are skipped.
func LoadDataset(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	catIdx, textIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case categoryColumn:
			catIdx = i
		case textColumn:
			textIdx = i
		}
	}
	if catIdx < 0 || textIdx < 0 {
		return nil, fmt.Errorf("dataset must have %q and %q columns, got %v", categoryColumn, textColumn, header)
	}

	var samples []Sample
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if catIdx >= len(rec) || textIdx >= len(rec) {
			continue
		}
		cat := strings.TrimSpace(rec[catIdx])
		text := strings.TrimSpace(rec[textIdx])
		if cat == "" || text == "" {
			continue
		}
		samples = append(samples, Sample{Category: cat, Text: text})
	}
	if len(samples) == 0 {
		return nil, errors.New("dataset contains no usable rows")
	}
	return samples, nil
}

// FilterCategories keeps only samples whose category is in allowed.
// An empty allowed list keeps everything.
func FilterCategories(samples []Sample, allowed []string) []Sample {
	if len(allowed) == 0 {
		return samples
	}
	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	var out []Sample
	for _, s := range samples {
		if _, ok := set[s.Category]; ok {
			out = append(out, s)
		}
	}
	return out
}
