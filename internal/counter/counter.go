// Package counter provides text counting strategies for dataset reporting.
//
// Three strategies are available: token counting (using OpenAI's tiktoken
// with the cl100k_base encoding), word counting, and character counting.
// Dataset summaries report word counts by default and add token counts when
// an encoding is available, so corpus size can be compared against model
// context windows.
//
// Usage Example:
//
//	c, err := counter.NewCounter(counter.Words)
//	count := c.Count("char-grilled pork ribs")
//	// Returns the number of words in the text
//
// The Counter interface abstracts over the strategies; NewCounter is the
// factory entry point urging callers toward a single construction path, and
// ParseMethod maps user-facing flag values to counting methods.
package counter

import (
	"fmt"
	"strings"
)

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Tokens uses tiktoken with cl100k_base encoding (default)
	Tokens CountingMethod = iota
	// Words counts words using whitespace splitting
	Words
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// ParseMethod maps a user-facing method name (as passed on the command line)
// to a CountingMethod. Singular and plural spellings are both accepted.
func ParseMethod(s string) (CountingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tokens", "token":
		return Tokens, nil
	case "words", "word":
		return Words, nil
	case "characters", "chars", "char":
		return Characters, nil
	default:
		return Tokens, fmt.Errorf("unknown counting method %q (expected tokens, words, or characters)", s)
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// This functions as a factory; it returns concrete Counter types,
// providing a single, simple entry point for to get a counter instance.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Tokens:
		return NewTokenCounter()
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	default:
		return NewTokenCounter() // fallback to default
	}
}
