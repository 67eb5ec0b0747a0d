package scrape

import (
	"fmt"
	"regexp"
	"strings"
)

// navStrip is the site's navigation bar rendered as one run of text. Any
// extracted block containing it is a whole-page dump, not content.
const navStrip = "Food Drinks Wines All Drinks Cake Events"

// NoiseFilter rejects navigation chrome, placeholder copy, and footer
// boilerplate from extracted text.
type NoiseFilter struct {
	minLen   int
	patterns []*regexp.Regexp
}

// NewNoiseFilter compiles the configured patterns case-insensitively.
// Strings shorter than minLen are treated as noise without consulting
// the patterns.
func NewNoiseFilter(minLen int, patterns []string) (*NoiseFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid noise pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &NoiseFilter{minLen: minLen, patterns: compiled}, nil
}

// IsNoise reports whether text is navigation, placeholder, or other noise.
func (f *NoiseFilter) IsNoise(text string) bool {
	t := strings.TrimSpace(text)
	if len(t) < f.minLen {
		return true
	}
	for _, re := range f.patterns {
		if re.MatchString(t) {
			return true
		}
	}
	return strings.Contains(t, navStrip)
}
