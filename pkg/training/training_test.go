package training

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resumes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeCSV(t, "id,category,resume_text\n"+
		"1,Data Science,python pandas sql\n"+
		"2,HR,recruitment payroll\n"+
		"3,,skipped\n"+
		"4,Sales,\n")
	samples, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "Data Science", samples[0].Category)
	assert.Equal(t, "recruitment payroll", samples[1].Text)
}

func TestLoadDatasetMissingColumns(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n")
	_, err := LoadDataset(path)
	assert.Error(t, err)
}

func TestLoadDatasetEmpty(t *testing.T) {
	path := writeCSV(t, "category,resume_text\n")
	_, err := LoadDataset(path)
	assert.Error(t, err)
}

func TestFilterCategories(t *testing.T) {
	samples := []Sample{{Category: "HR"}, {Category: "Sales"}, {Category: "HR"}}
	out := FilterCategories(samples, []string{"HR"})
	assert.Len(t, out, 2)
	assert.Equal(t, samples, FilterCategories(samples, nil))
}

func TestStratifiedSplit(t *testing.T) {
	var samples []Sample
	for i := 0; i < 10; i++ {
		samples = append(samples, Sample{Category: "A", Text: "a"})
	}
	for i := 0; i < 5; i++ {
		samples = append(samples, Sample{Category: "B", Text: "b"})
	}
	train, test := StratifiedSplit(samples, 0.2, 42)
	assert.Len(t, train, 12)
	assert.Len(t, test, 3)

	// reproducible with the same seed
	train2, test2 := StratifiedSplit(samples, 0.2, 42)
	assert.Equal(t, train, train2)
	assert.Equal(t, test, test2)
}

func TestStratifiedSplitKeepsTrainingSample(t *testing.T) {
	samples := []Sample{{Category: "Solo", Text: "x"}}
	train, test := StratifiedSplit(samples, 0.9, 1)
	assert.Len(t, train, 1)
	assert.Empty(t, test)
}

func datasetFixture() []Sample {
	var samples []Sample
	ds := []string{
		"python machine learning pandas numpy statistics sql",
		"statistics python pandas sql models analysis",
		"data analysis numpy pandas python statistics sql",
		"machine learning statistics python numpy pandas",
		"pandas sql python statistics analysis numpy",
	}
	fe := []string{
		"html css javascript react typescript webpack",
		"react javascript css html sass components",
		"typescript react webpack css javascript html",
		"javascript html css react frontend typescript",
		"css react javascript webpack html sass",
	}
	for _, d := range ds {
		samples = append(samples, Sample{Category: "Data Science", Text: d})
	}
	for _, d := range fe {
		samples = append(samples, Sample{Category: "Frontend Developer", Text: d})
	}
	return samples
}

func TestFitProducesUsableBundle(t *testing.T) {
	opts := DefaultOptions()
	opts.Vectorizer.MinDocFreq = 1
	opts.Classifier.MaxEpochs = 300

	bundle, report, err := Fit(datasetFixture(), opts, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, []string{"Data Science", "Frontend Developer"}, bundle.Labels.Classes)
	assert.Positive(t, bundle.Vectorizer.Dim())

	// the held-out split is tiny but trivially separable
	assert.Equal(t, 1.0, report.Accuracy)
}

func TestEvaluateCountsUnknownCategoriesAsMisses(t *testing.T) {
	opts := DefaultOptions()
	opts.Vectorizer.MinDocFreq = 1
	opts.Classifier.MaxEpochs = 200
	bundle, _, err := Fit(datasetFixture(), opts, zap.NewNop())
	require.NoError(t, err)

	report := Evaluate(bundle, []Sample{{Category: "Astronaut", Text: "python pandas sql"}})
	assert.Zero(t, report.Accuracy)
	assert.Equal(t, 1, report.Total)
	assert.NotEmpty(t, report.String())
}

func TestFitRejectsTinyDatasets(t *testing.T) {
	_, _, err := Fit([]Sample{{Category: "A", Text: "x"}}, DefaultOptions(), zap.NewNop())
	assert.Error(t, err)
}
