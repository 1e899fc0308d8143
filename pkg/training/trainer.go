package training

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/careerfit/screening/pkg/model"
	"github.com/careerfit/screening/pkg/nlp"
)

// Options bundles the knobs of one training run.
type Options struct {
	Vectorizer model.VectorizerParams
	Classifier model.TrainConfig
	TestShare  float64
	Seed       int64
}

// DefaultOptions mirror the offline run the shipped artifacts came from.
func DefaultOptions() Options {
	return Options{
		Vectorizer: model.DefaultVectorizerParams(),
		Classifier: model.DefaultTrainConfig(),
		TestShare:  0.2,
		Seed:       42,
	}
}

// Fit cleans the samples, fits the vectorizer/classifier/encoder triple on
// the training split and reports held-out accuracy. The returned bundle is
// ready to be saved as the serving artifacts.
func Fit(samples []Sample, opts Options, log *zap.Logger) (*model.Bundle, *Report, error) {
	if len(samples) < 2 {
		return nil, nil, errors.New("not enough samples to train")
	}
	train, test := StratifiedSplit(samples, opts.TestShare, opts.Seed)
	log.Info("dataset split",
		zap.Int("train", len(train)),
		zap.Int("test", len(test)))

	labels := make([]string, len(train))
	docs := make([]string, len(train))
	for i, s := range train {
		labels[i] = s.Category
		docs[i] = nlp.Clean(s.Text)
	}
	encoder := model.NewLabelEncoder(labels)

	vectorizer := model.FitVectorizer(docs, opts.Vectorizer)
	log.Info("vectorizer fitted",
		zap.Int("vocabulary", vectorizer.Dim()),
		zap.Int("categories", encoder.Len()))

	vecs := make([]model.FeatureVector, len(docs))
	encoded := make([]int, len(docs))
	for i, d := range docs {
		vecs[i] = vectorizer.Transform(d)
		idx, ok := encoder.Encode(labels[i])
		if !ok {
			return nil, nil, fmt.Errorf("label %q missing from encoder", labels[i])
		}
		encoded[i] = idx
	}

	classifier := model.TrainClassifier(vecs, encoded, encoder.Len(), opts.Classifier)
	bundle := model.NewBundle(vectorizer, classifier, encoder)

	report := Evaluate(bundle, test)
	log.Info("held-out evaluation",
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("samples", report.Total))
	return bundle, report, nil
}

// Evaluate scores a fitted bundle against labelled samples. Samples whose
// category the bundle does not know are counted as misses.
func Evaluate(bundle *model.Bundle, samples []Sample) *Report {
	report := newReport(bundle.Labels.Classes)
	for _, s := range samples {
		vec := bundle.Vectorizer.Transform(nlp.Clean(s.Text))
		predicted := bundle.Labels.Decode(bundle.Classifier.Predict(vec))
		report.observe(s.Category, predicted)
	}
	report.finish()
	return report
}
