package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfit/screening/pkg/model"
	"github.com/careerfit/screening/pkg/nlp"
	"github.com/careerfit/screening/pkg/skills"
)

// trains a small three-class model so the pipeline runs end to end
func serviceFixture(t *testing.T) UseCase {
	t.Helper()
	samples := []struct {
		category string
		text     string
	}{
		{"Data Science", "python machine learning pandas numpy statistics sql data analysis"},
		{"Data Science", "statistics python pandas sql machine learning models"},
		{"Data Science", "data analysis numpy pandas python statistics"},
		{"Python Developer", "python django flask rest api postgresql docker git"},
		{"Python Developer", "django python fastapi rest api git docker"},
		{"Python Developer", "flask python postgresql rest api services"},
		{"Frontend Developer", "html css javascript react typescript webpack"},
		{"Frontend Developer", "react javascript css html sass components"},
		{"Frontend Developer", "typescript react webpack css javascript"},
	}
	docs := make([]string, len(samples))
	labels := make([]string, len(samples))
	for i, s := range samples {
		docs[i] = nlp.Clean(s.text)
		labels[i] = s.category
	}
	encoder := model.NewLabelEncoder(labels)
	v := model.FitVectorizer(docs, model.VectorizerParams{MaxFeatures: 0, MinDocFreq: 1, MaxDocShare: 1})
	vecs := make([]model.FeatureVector, len(docs))
	encoded := make([]int, len(docs))
	for i, d := range docs {
		vecs[i] = v.Transform(d)
		encoded[i], _ = encoder.Encode(labels[i])
	}
	cfg := model.DefaultTrainConfig()
	cfg.MaxEpochs = 300
	clf := model.TrainClassifier(vecs, encoded, encoder.Len(), cfg)

	return NewService(model.NewBundle(v, clf, encoder), skills.Default(), DefaultTopN)
}

func TestScreenEndToEnd(t *testing.T) {
	svc := serviceFixture(t)
	res, err := svc.Screen(context.Background(),
		"Experienced Python developer skilled in machine learning, pandas, SQL and statistics.")
	require.NoError(t, err)

	assert.Contains(t, res.ExtractedSkills, "python")
	assert.Contains(t, res.ExtractedSkills, "machine learning")
	assert.Contains(t, res.ExtractedSkills, "pandas")
	assert.Contains(t, res.ExtractedSkills, "sql")

	assert.Contains(t, []string{"Data Science", "Python Developer"}, res.PrimaryRole)
	assert.GreaterOrEqual(t, res.PrimaryConfidence, 0.0)
	assert.LessOrEqual(t, res.PrimaryConfidence, 1.0)

	require.Len(t, res.Recommendations, 3)
	for i, rec := range res.Recommendations {
		assert.GreaterOrEqual(t, rec.Confidence, 0.0)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, rec.Confidence, res.Recommendations[i-1].Confidence)
			assert.Empty(t, rec.MissingSkills)
		}
	}

	assert.Equal(t, res.Recommendations[0].Role, res.PrimaryRole)
	assert.NotEmpty(t, res.BestFitRole.Role)
	assert.NotEmpty(t, res.BestFitRole.Reason)

	require.Len(t, res.JobOpportunities, 3)
	assert.NotEmpty(t, res.JobOpportunities[0].Links)
	require.Len(t, res.InterviewPrep, 3)
	assert.NotEmpty(t, res.InterviewPrep[0].Questions)
}

func TestScreenRejectsShortInput(t *testing.T) {
	svc := serviceFixture(t)

	_, err := svc.Screen(context.Background(), "")
	assert.ErrorIs(t, err, ErrTextTooShort)

	_, err = svc.Screen(context.Background(), "too short")
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestScreenExtractedSkillsCapped(t *testing.T) {
	svc := serviceFixture(t)
	res, err := svc.Screen(context.Background(),
		"python java sql docker kubernetes aws azure react angular vue html css javascript git linux jenkins terraform ansible")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.ExtractedSkills), 10)
}

func TestJobLinksEscapeRole(t *testing.T) {
	links := jobLinksFor("Mobile App Developer (iOS/Android)")
	require.NotEmpty(t, links.Links)
	for _, l := range links.Links {
		assert.NotContains(t, l.URL, " ")
		assert.NotContains(t, l.URL, "(")
	}
}

func TestInterviewPrepSkillQuestionsCapped(t *testing.T) {
	prep := interviewPrepFor("Data Science", []string{"python", "sql", "pandas", "numpy"})
	static := len(interviewQuestions["Data Science"])
	assert.Len(t, prep.Questions, static+3)

	fallback := interviewPrepFor("Unheard Of Role", nil)
	assert.Equal(t, genericQuestions, fallback.Questions[:len(genericQuestions)])
}
