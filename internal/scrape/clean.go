package scrape

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctuation folds the typographic characters WordPress themes emit into
// plain ASCII so CSV consumers see ordinary quotes and dashes.
var punctuation = strings.NewReplacer(
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// CleanText normalizes scraped text. It applies Unicode compatibility
// normalization (which also turns non-breaking spaces into plain spaces),
// folds smart quotes and dashes to ASCII, and collapses runs of whitespace
// into single spaces with the ends trimmed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)
	text = punctuation.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
