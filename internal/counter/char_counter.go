package counter

import (
	"log/slog"
	"unicode/utf8"
)

// CharCounter implements character counting using UTF-8 rune counting.
// Rune counting matters here; menu text carries accented characters
// (crème, jalapeño) that would inflate a byte count.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of UTF-8 characters (runes) in the given text.
func (cc *CharCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	charCount := utf8.RuneCountInString(text)

	slog.Debug("Character count calculated", "textLength", len(text), "charCount", charCount)
	return charCount
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}
