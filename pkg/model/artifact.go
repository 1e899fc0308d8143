package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Artifact file names inside the model directory. The three files are
// produced together by one training run and must be loaded together.
const (
	VectorizerFile = "tfidf_vectorizer.json"
	ClassifierFile = "logistic_model.json"
	EncoderFile    = "label_encoder.json"
)

var (
	ErrVectorizerMissing = errors.New("vectorizer artifact not found: run the trainer first")
	ErrClassifierMissing = errors.New("classifier artifact not found: run the trainer first")
	ErrEncoderMissing    = errors.New("label encoder artifact not found: run the trainer first")
	// ErrArtifactMismatch means the three files do not come from the same
	// training run. That is an integrity violation, not a recoverable state.
	ErrArtifactMismatch = errors.New("model artifacts do not belong to the same training run")
)

// Bundle is the artifact triple: vectorizer vocabulary, classifier weights
// and the label-index mapping, stamped with one training-run id.
type Bundle struct {
	ArtifactID string
	TrainedAt  time.Time
	Vectorizer *Vectorizer
	Classifier *Classifier
	Labels     *LabelEncoder
}

// NewBundle stamps freshly trained components with a run id.
func NewBundle(v *Vectorizer, m *Classifier, e *LabelEncoder) *Bundle {
	return &Bundle{
		ArtifactID: uuid.NewString(),
		TrainedAt:  time.Now().UTC(),
		Vectorizer: v,
		Classifier: m,
		Labels:     e,
	}
}

type artifactFile[T any] struct {
	ArtifactID string    `json:"artifact_id"`
	TrainedAt  time.Time `json:"trained_at"`
	Payload    T         `json:"payload"`
}

func writeArtifact[T any](path, id string, at time.Time, payload T) error {
	data, err := json.Marshal(artifactFile[T]{ArtifactID: id, TrainedAt: at, Payload: payload})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readArtifact[T any](path string, missing error) (*artifactFile[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (%s)", missing, path)
		}
		return nil, err
	}
	var f artifactFile[T]
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the triple into dir, creating it if needed.
func (b *Bundle) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, VectorizerFile), b.ArtifactID, b.TrainedAt, b.Vectorizer); err != nil {
		return fmt.Errorf("save vectorizer: %w", err)
	}
	if err := writeArtifact(filepath.Join(dir, ClassifierFile), b.ArtifactID, b.TrainedAt, b.Classifier); err != nil {
		return fmt.Errorf("save classifier: %w", err)
	}
	if err := writeArtifact(filepath.Join(dir, EncoderFile), b.ArtifactID, b.TrainedAt, b.Labels); err != nil {
		return fmt.Errorf("save label encoder: %w", err)
	}
	return nil
}

// Load reads the triple from dir and verifies integrity: every file must
// exist, carry the same run id, and the shapes must agree. Any violation is
// fatal for the caller; there is no degraded mode.
func LoadBundle(dir string) (*Bundle, error) {
	vf, err := readArtifact[*Vectorizer](filepath.Join(dir, VectorizerFile), ErrVectorizerMissing)
	if err != nil {
		return nil, err
	}
	cf, err := readArtifact[*Classifier](filepath.Join(dir, ClassifierFile), ErrClassifierMissing)
	if err != nil {
		return nil, err
	}
	ef, err := readArtifact[*LabelEncoder](filepath.Join(dir, EncoderFile), ErrEncoderMissing)
	if err != nil {
		return nil, err
	}

	if vf.ArtifactID == "" || vf.ArtifactID != cf.ArtifactID || cf.ArtifactID != ef.ArtifactID {
		return nil, fmt.Errorf("%w: ids %q/%q/%q", ErrArtifactMismatch, vf.ArtifactID, cf.ArtifactID, ef.ArtifactID)
	}
	if cf.Payload.Dim() != vf.Payload.Dim() {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d",
			ErrArtifactMismatch, cf.Payload.Dim(), vf.Payload.Dim())
	}
	if cf.Payload.NumClasses() != ef.Payload.Len() {
		return nil, fmt.Errorf("%w: classifier has %d classes, encoder has %d",
			ErrArtifactMismatch, cf.Payload.NumClasses(), ef.Payload.Len())
	}

	return &Bundle{
		ArtifactID: vf.ArtifactID,
		TrainedAt:  vf.TrainedAt,
		Vectorizer: vf.Payload,
		Classifier: cf.Payload,
		Labels:     ef.Payload,
	}, nil
}
