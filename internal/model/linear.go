package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinearClassifier is the native classifier artifact: a fitted linear model
// with one weight row per class. The export tool writes exactly this struct
// with encoding/gob. When Probability is set the decision scores are
// multinomial logistic-regression logits and softmax turns them into class
// probabilities; when clear (e.g. a margin classifier) only the argmax label
// is meaningful.
type LinearClassifier struct {
	Labels      []string  // class names in the model's output order
	Weights     []float64 // row-major [len(Labels) x dim]
	Intercepts  []float64 // one per class
	Probability bool
}

// NewLinearClassifierFromFile loads a classifier artifact from path.
func NewLinearClassifierFromFile(path string) (*LinearClassifier, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	return NewLinearClassifierWithReader(fl)
}

// NewLinearClassifierWithReader loads a classifier artifact from r.
func NewLinearClassifierWithReader(r io.Reader) (*LinearClassifier, error) {
	c := &LinearClassifier{}
	if err := gob.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("failed to decode classifier: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *LinearClassifier) validate() error {
	k := len(c.Labels)
	if k == 0 {
		return fmt.Errorf("classifier has no classes")
	}
	if len(c.Intercepts) != k {
		return fmt.Errorf("classifier has %d intercepts for %d classes", len(c.Intercepts), k)
	}
	if len(c.Weights) == 0 || len(c.Weights)%k != 0 {
		return fmt.Errorf("classifier weight matrix of %d values does not divide into %d rows", len(c.Weights), k)
	}
	return nil
}

// Dim returns the expected feature-vector dimension.
func (c *LinearClassifier) Dim() int {
	return len(c.Weights) / len(c.Labels)
}

// Classes returns the class names in the model's output order.
func (c *LinearClassifier) Classes() []string {
	return append([]string(nil), c.Labels...)
}

// Predict returns the label with the highest decision score. Ties go to the
// earlier class, matching the training pipeline's argmax.
func (c *LinearClassifier) Predict(vec []float64) (string, error) {
	scores, err := c.decision(vec)
	if err != nil {
		return "", err
	}
	return c.Labels[floats.MaxIdx(scores)], nil
}

// Probabilities returns softmax probabilities over the decision scores, in
// Classes() order. A model exported without probability calibration reports
// none.
func (c *LinearClassifier) Probabilities(vec []float64) ([]float64, bool) {
	if !c.Probability {
		return nil, false
	}
	scores, err := c.decision(vec)
	if err != nil {
		return nil, false
	}
	return softmax(scores), true
}

// decision computes W·x + b for one feature vector.
func (c *LinearClassifier) decision(vec []float64) ([]float64, error) {
	k, dim := len(c.Labels), c.Dim()
	if len(vec) != dim {
		return nil, fmt.Errorf("feature vector has %d dimensions, classifier expects %d", len(vec), dim)
	}

	w := mat.NewDense(k, dim, c.Weights)
	scores := mat.NewVecDense(k, nil)
	scores.MulVec(w, mat.NewVecDense(dim, vec))
	scores.AddVec(scores, mat.NewVecDense(k, c.Intercepts))

	return scores.RawVector().Data, nil
}

// softmax subtracts the max score before exponentiating so exp stays finite.
func softmax(scores []float64) []float64 {
	max := floats.Max(scores)
	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	floats.Scale(1/sum, probs)
	return probs
}
