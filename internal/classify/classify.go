// Package classify orchestrates one text classification: normalize the raw
// input, vectorize it, ask the classifier for a label, and assemble the
// result the presentation layer renders.
package classify

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Isaac25-lgtm/hickory/internal/category"
	"github.com/Isaac25-lgtm/hickory/internal/model"
	"github.com/Isaac25-lgtm/hickory/internal/normalize"
)

// ErrEmptyInput reports a blank classification request. Callers surface it as
// a user-visible warning, not a failure.
var ErrEmptyInput = errors.New("please enter some text to classify")

// LabelProb pairs one label with its probability estimate.
type LabelProb struct {
	Label string  `json:"label"`
	Prob  float64 `json:"probability"`
}

// Result is one classification outcome. Confidence and Distribution are nil
// when the classifier backend exposes no probability estimates.
type Result struct {
	Label        string      `json:"label"`
	Description  string      `json:"description"`
	Confidence   *float64    `json:"confidence,omitempty"`
	Distribution []LabelProb `json:"distribution,omitempty"`
}

// Pipeline wires the normalizer and the loaded model into one inference
// path. It holds no per-call state, so a single Pipeline is safe for
// concurrent use.
type Pipeline struct {
	Normalizer *normalize.Normalizer
	Vectorizer model.Vectorizer
	Classifier model.Classifier
}

// New builds a Pipeline over a loaded model bundle.
func New(bundle *model.Bundle) *Pipeline {
	return &Pipeline{
		Normalizer: normalize.New(),
		Vectorizer: bundle.Vectorizer,
		Classifier: bundle.Classifier,
	}
}

// Classify runs one inference over raw input text.
//
// Blank input (empty or whitespace-only) is rejected with ErrEmptyInput
// before any model work. Text that normalizes to nothing still proceeds: the
// vectorizer maps it to the zero vector and the classifier answers from its
// intercepts alone, the same way the training pipeline treats documents with
// no known vocabulary.
func (p *Pipeline) Classify(raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}

	normalized := p.Normalizer.Normalize(raw)
	slog.Debug("Normalized input", "rawLength", len(raw), "normalized", normalized)

	vec := p.Vectorizer.Transform(normalized)

	label, err := p.Classifier.Predict(vec)
	if err != nil {
		return Result{}, fmt.Errorf("prediction failed: %w", err)
	}

	result := Result{
		Label:       label,
		Description: category.Describe(label),
	}

	if probs, ok := p.Classifier.Probabilities(vec); ok {
		classes := p.Classifier.Classes()
		dist := make([]LabelProb, 0, len(classes))
		for i, class := range classes {
			if i >= len(probs) {
				break
			}
			dist = append(dist, LabelProb{Label: class, Prob: probs[i]})
		}
		// descending by probability; stable so equal probabilities keep
		// the model's class order and repeated calls render identically
		sort.SliceStable(dist, func(i, j int) bool { return dist[i].Prob > dist[j].Prob })

		if len(dist) > 0 {
			confidence := dist[0].Prob
			result.Confidence = &confidence
			result.Distribution = dist
		}
	}

	slog.Debug("Classification complete", "label", result.Label)
	return result, nil
}

// examples are the canned inputs offered by the presentation shell, one per
// well-populated category.
var examples = []string{
	"Grilled beef fillet with mushroom sauce and mashed potatoes",
	"Vodka based cocktail with fresh lime and mint leaves",
	"South African Cabernet Sauvignon with dark fruit and oak notes",
	"The restaurant has excellent ambiance and friendly staff",
	"Red velvet cake with cream cheese frosting",
}

// Examples returns a copy of the canned example inputs.
func Examples() []string {
	return append([]string(nil), examples...)
}
