package normalize_test

import (
	"strings"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/normalize"
)

func TestNormalize(t *testing.T) {
	n := normalize.NewWithTokenizer(normalize.FieldsTokenizer{})

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace only",
			raw:      "   \n\t  ",
			expected: "",
		},
		{
			name:     "all stopwords and short tokens",
			raw:      "to a in it at be",
			expected: "",
		},
		{
			name:     "stopwords and inflections",
			raw:      "The chefs were cooking delicious meals",
			expected: "chef cook delicious meal",
		},
		{
			name:     "menu item with punctuation",
			raw:      "Grilled beef fillet, with mushroom sauce & mashed potatoes!",
			expected: "grill beef fillet mushroom sauce mash potato",
		},
		{
			name:     "digits and symbols stripped",
			raw:      "Call us at +256 700-123456 (daily 10:00-22:00)",
			expected: "call daily",
		},
		{
			name:     "drink description",
			raw:      "Vodka based cocktail with fresh lime and mint leaves",
			expected: "vodka base cocktail fresh lime mint leave",
		},
		{
			name:     "mixed case collapses",
			raw:      "RED   Velvet\tCAKE",
			expected: "red velvet cake",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

// normalized output must be a fixed point of the pipeline
func TestNormalizeIdempotent(t *testing.T) {
	n := normalize.NewWithTokenizer(normalize.FieldsTokenizer{})

	inputs := []string{
		"The chefs were cooking delicious meals",
		"Grilled beef fillet with mushroom sauce and mashed potatoes",
		"South African Cabernet Sauvignon with dark fruit and oak notes",
		"Red velvet cake with cream cheese frosting",
		"The restaurant has excellent ambiance and friendly staff",
	}

	for _, raw := range inputs {
		once := n.Normalize(raw)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not a fixed point on its own output:\n first: %q\nsecond: %q", once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	n := normalize.NewWithTokenizer(normalize.FieldsTokenizer{})

	tokens := n.Tokens("The chefs were cooking delicious meals")
	want := []string{"chef", "cook", "delicious", "meal"}
	if len(tokens) != len(want) {
		t.Fatalf("Tokens() returned %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, tok, want[i])
		}
	}

	if got := n.Tokens("   "); got != nil {
		t.Errorf("Tokens on blank input = %v, want nil", got)
	}
}

// the default prose tokenizer must agree with plain whitespace splitting on
// cleaned pipeline text
func TestDefaultTokenizerAgreement(t *testing.T) {
	def := normalize.New()
	fields := normalize.NewWithTokenizer(normalize.FieldsTokenizer{})

	inputs := []string{
		"Grilled chicken wings with barbecue sauce",
		"The chefs were cooking delicious meals",
	}

	for _, raw := range inputs {
		a := def.Normalize(raw)
		b := fields.Normalize(raw)
		if a != b {
			t.Errorf("tokenizer disagreement for %q:\n prose: %q\nfields: %q", raw, a, b)
		}
	}
}

func TestNormalizeNeverPanicsOnUnicode(t *testing.T) {
	n := normalize.New()

	inputs := []string{
		"crème brûlée with café au lait",
		"日本語のテキスト",
		strings.Repeat("a", 10_000),
	}

	for _, raw := range inputs {
		_ = n.Normalize(raw)
	}
}
