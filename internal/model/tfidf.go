package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// TFIDFVectorizer is the native vectorizer artifact. The export tool writes
// exactly this struct with encoding/gob: the fitted vocabulary, the per-column
// inverse document frequencies, and the sublinear-tf flag used at training
// time. Smoothing is already baked into the IDF values.
type TFIDFVectorizer struct {
	Vocabulary  map[string]int // term -> column index
	IDF         []float64      // indexed by column
	SublinearTF bool           // use 1+log(tf) instead of raw term counts
}

// NewTFIDFVectorizerFromFile loads a vectorizer artifact from path.
func NewTFIDFVectorizerFromFile(path string) (*TFIDFVectorizer, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	return NewTFIDFVectorizerWithReader(fl)
}

// NewTFIDFVectorizerWithReader loads a vectorizer artifact from r.
func NewTFIDFVectorizerWithReader(r io.Reader) (*TFIDFVectorizer, error) {
	v := &TFIDFVectorizer{}
	if err := gob.NewDecoder(r).Decode(v); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer: %w", err)
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *TFIDFVectorizer) validate() error {
	if len(v.IDF) == 0 {
		return fmt.Errorf("vectorizer has an empty IDF table")
	}
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("vectorizer has an empty vocabulary")
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("vocabulary term %q maps to column %d, outside the %d-column IDF table",
				term, idx, len(v.IDF))
		}
	}
	return nil
}

// Dim returns the feature-vector dimension.
func (v *TFIDFVectorizer) Dim() int {
	return len(v.IDF)
}

// Transform converts one normalized document into its L2-normalized tf-idf
// vector. Terms outside the fitted vocabulary contribute nothing; an input
// with no known terms yields the zero vector.
func (v *TFIDFVectorizer) Transform(normalized string) []float64 {
	vec := make([]float64, len(v.IDF))

	for _, term := range strings.Fields(normalized) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	for idx, count := range vec {
		if count == 0 {
			continue
		}
		tf := count
		if v.SublinearTF {
			tf = 1 + math.Log(count)
		}
		vec[idx] = tf * v.IDF[idx]
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}

	return vec
}
