package screening

import (
	"context"
	"strings"

	"github.com/careerfit/screening/pkg/model"
	"github.com/careerfit/screening/pkg/nlp"
	"github.com/careerfit/screening/pkg/skills"
)

// extractedSkillsLimit caps the extracted-skill preview in the response.
const extractedSkillsLimit = 10

// UseCase is the screening entry point consumed by the serving layer.
type UseCase interface {
	Screen(ctx context.Context, rawText string) (Result, error)
}

type service struct {
	bundle    *model.Bundle
	registry  *skills.Registry
	extractor *skills.Extractor
	topN      int
}

// NewService wires the pipeline around a loaded artifact bundle and skill
// registry. Everything held here is read-only after construction, so one
// service instance serves concurrent requests without locking.
func NewService(bundle *model.Bundle, registry *skills.Registry, topN int) UseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &service{
		bundle:    bundle,
		registry:  registry,
		extractor: skills.NewExtractor(registry),
		topN:      topN,
	}
}

// Screen runs the full inference chain: validate, extract skills, clean,
// vectorize, classify, rank and assemble the response. The chain is a pure
// synchronous computation; it either completes fully or fails whole.
func (s *service) Screen(_ context.Context, rawText string) (Result, error) {
	text := strings.TrimSpace(rawText)
	if len(text) < MinTextLength {
		return Result{}, ErrTextTooShort
	}

	extracted := s.extractor.Extract(text)

	cleaned := nlp.Clean(text)
	vec := s.bundle.Vectorizer.Transform(cleaned)
	probs := s.bundle.Classifier.PredictProba(vec)

	pairs := make([]CategoryProb, len(probs))
	for i, p := range probs {
		pairs[i] = CategoryProb{Category: s.bundle.Labels.Decode(i), Prob: p}
	}

	recs := Rank(s.registry, pairs, extracted, s.topN)
	if len(recs) == 0 {
		return Result{}, ErrTextTooShort
	}

	res := Result{
		PrimaryRole:       recs[0].Role,
		PrimaryConfidence: recs[0].Confidence,
		Recommendations:   recs,
		ExtractedSkills:   capList(extracted, extractedSkillsLimit),
		BestFitRole:       PickBestFit(recs),
	}
	for _, rec := range recs {
		res.JobOpportunities = append(res.JobOpportunities, jobLinksFor(rec.Role))
		res.InterviewPrep = append(res.InterviewPrep, interviewPrepFor(rec.Role, rec.MatchedSkills))
	}
	return res, nil
}

func capList(list []string, limit int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
