// Package model loads the pre-trained classification artifacts and answers
// predictions through them.
//
// The artifacts cross this boundary as black boxes: a TF-IDF vectorizer and a
// linear classifier exported from the training pipeline, serialized with
// encoding/gob (or, optionally, an ONNX graph for the classifier half). This
// package never fits or retrains anything; it loads once and serves reads.
package model

import (
	"fmt"

	"github.com/Isaac25-lgtm/hickory/internal/config"
)

// Vectorizer maps normalized text to a fixed-dimension feature vector.
type Vectorizer interface {
	// Transform converts one normalized document into its feature vector.
	Transform(normalized string) []float64

	// Dim returns the vector dimension fixed at training time.
	Dim() int
}

// Classifier predicts a label for one feature vector.
type Classifier interface {
	// Predict returns the predicted label for vec.
	Predict(vec []float64) (string, error)

	// Probabilities returns the per-class probability estimates for vec in
	// Classes() order, or ok=false when the backend exposes none.
	Probabilities(vec []float64) ([]float64, bool)

	// Classes returns the label set in the model's output order.
	Classes() []string
}

// Bundle is the immutable handle produced by Load and passed into the
// inference pipeline. Loading happens exactly once per process; everything
// after that is read-only, so a Bundle is safe for concurrent use.
type Bundle struct {
	Vectorizer Vectorizer
	Classifier Classifier
	Meta       Meta
}

// Meta describes the loaded artifacts for display and health checks.
type Meta struct {
	Backend        string
	Dim            int
	Classes        []string
	VectorizerPath string
	ClassifierPath string
}

// LoadError reports a failure to load a model artifact. It is fatal: a
// process that cannot load its artifacts cannot serve inference.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model artifact %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the artifacts named by cfg and returns the serving bundle.
// The vectorizer is always the native gob artifact; the classifier comes from
// gob by default or from an ONNX session when cfg.Backend is "onnx".
func Load(cfg config.ModelConfig) (*Bundle, error) {
	vec, err := NewTFIDFVectorizerFromFile(cfg.VectorizerPath())
	if err != nil {
		return nil, &LoadError{Path: cfg.VectorizerPath(), Err: err}
	}

	var clf Classifier
	var clfPath string
	switch cfg.Backend {
	case "", "gob":
		clfPath = cfg.ClassifierPath()
		linear, err := NewLinearClassifierFromFile(clfPath)
		if err != nil {
			return nil, &LoadError{Path: clfPath, Err: err}
		}
		if linear.Dim() != vec.Dim() {
			return nil, &LoadError{
				Path: clfPath,
				Err:  fmt.Errorf("classifier expects %d features but vectorizer produces %d", linear.Dim(), vec.Dim()),
			}
		}
		clf = linear
	case "onnx":
		clfPath = cfg.OnnxModelPath()
		onnx, err := NewOnnxClassifier(cfg, vec.Dim())
		if err != nil {
			return nil, &LoadError{Path: clfPath, Err: err}
		}
		clf = onnx
	default:
		return nil, fmt.Errorf("unknown model backend %q (expected \"gob\" or \"onnx\")", cfg.Backend)
	}

	backend := cfg.Backend
	if backend == "" {
		backend = "gob"
	}

	return &Bundle{
		Vectorizer: vec,
		Classifier: clf,
		Meta: Meta{
			Backend:        backend,
			Dim:            vec.Dim(),
			Classes:        clf.Classes(),
			VectorizerPath: cfg.VectorizerPath(),
			ClassifierPath: clfPath,
		},
	}, nil
}
