// Package normalize provides deterministic text normalization for the hickory CLI tool.
//
// The pipeline mirrors the preprocessing the classifier artifacts were fitted
// with, so inference-time text must pass through the exact same steps:
// lowercase, strip non-letters, collapse whitespace, tokenize, drop stopwords
// and short tokens, then lemmatize each survivor as a verb and re-lemmatize
// the result as a noun.
//
// Usage Example:
//
//	n := normalize.New()
//	n.Normalize("The chefs were cooking delicious meals")
//	// Returns "chef cook delicious meal"
//
// Normalize is pure and total: it never fails, and the worst case is an
// empty string when no token survives filtering.
package normalize

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// compiled once at package initialization
var (
	nonLetterRegex  = regexp.MustCompile(`[^a-z\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Tokenizer splits cleaned text into word tokens. The cleanup phases ahead of
// tokenization already reduce the input to lowercase letters and single
// spaces, so splitting is trivial today; the seam exists so a smarter
// tokenizer can be swapped in without touching the rest of the pipeline.
type Tokenizer interface {
	// Tokenize returns the word tokens of text, in order.
	Tokenize(text string) []string
}

// proseTokenizer uses the prose NLP tokenizer with tagging and entity
// extraction disabled.
type proseTokenizer struct{}

func (proseTokenizer) Tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		// tokenization of plain lowercase text should not fail; fall back
		// to whitespace splitting rather than dropping the input
		return strings.Fields(text)
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

// FieldsTokenizer splits on whitespace only. It matches the default
// tokenizer's behavior on cleaned pipeline text and keeps tests free of
// model-data loading.
type FieldsTokenizer struct{}

func (FieldsTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// Normalizer applies the fixed normalization pipeline.
type Normalizer struct {
	tokenizer Tokenizer
}

// New creates a Normalizer with the default prose-backed tokenizer.
func New() *Normalizer {
	return &Normalizer{tokenizer: proseTokenizer{}}
}

// NewWithTokenizer creates a Normalizer using the provided tokenizer.
func NewWithTokenizer(t Tokenizer) *Normalizer {
	return &Normalizer{tokenizer: t}
}

// Normalize reduces raw text to space-joined normalized tokens.
// It never fails; input with no surviving tokens yields "".
func (n *Normalizer) Normalize(raw string) string {
	return strings.Join(n.Tokens(raw), " ")
}

// Tokens runs the full pipeline and returns the surviving lemmatized tokens.
func (n *Normalizer) Tokens(raw string) []string {
	// lowercase, then reduce to letters and single spaces
	text := strings.ToLower(raw)
	text = nonLetterRegex.ReplaceAllString(text, " ")
	text = strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	var out []string
	for _, tok := range n.tokenizer.Tokenize(text) {
		// stopwords and very short tokens carry no signal for this model
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}

		// verb pass first, then noun pass over the verb result
		lemma := Lemma(Lemma(tok, Verb), Noun)
		out = append(out, lemma)
	}
	return out
}
