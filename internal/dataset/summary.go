package dataset

import (
	"sort"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/Isaac25-lgtm/hickory/internal/counter"
	"github.com/Isaac25-lgtm/hickory/internal/normalize"
)

// Summary describes one built dataset.
type Summary struct {
	Rows       int
	Words      int // whitespace-delimited words across all descriptions
	Units      int // supplementary units (model tokens by default) across all descriptions; -1 when unavailable
	ByPage     []FieldCount
	ByCategory []CategorySummary
}

// FieldCount is one value of a column with its row count.
type FieldCount struct {
	Name  string
	Count int
}

// CategorySummary is one category's row count and its most frequent terms.
type CategorySummary struct {
	Name     string
	Count    int
	TopTerms []TermCount
}

// TermCount is one stemmed term with its occurrence count.
type TermCount struct {
	Term  string
	Count int
}

// Summarize tallies rows per page and category, word and unit totals over
// the descriptions, and the topN most frequent stemmed terms per category.
// c counts the supplementary units (model tokens by default) and may be nil
// when no counter is available, in which case Units is -1.
func Summarize(rows []Row, topN int, c counter.Counter) Summary {
	s := Summary{Rows: len(rows), Units: -1}

	words := counter.NewWordCounter()
	pages := make(map[string]int)
	byCategory := make(map[string]int)
	descriptions := make(map[string][]string)

	if c != nil {
		s.Units = 0
	}
	for _, row := range rows {
		pages[row.SourcePage]++
		byCategory[row.Category]++
		descriptions[row.Category] = append(descriptions[row.Category], row.Description)

		s.Words += words.Count(row.Description)
		if c != nil {
			s.Units += c.Count(row.Description)
		}
	}

	s.ByPage = sortedCounts(pages)
	for _, fc := range sortedCounts(byCategory) {
		s.ByCategory = append(s.ByCategory, CategorySummary{
			Name:     fc.Name,
			Count:    fc.Count,
			TopTerms: topTerms(descriptions[fc.Name], topN),
		})
	}

	return s
}

// sortedCounts orders a tally by count descending, then name, so repeated
// runs print identically.
func sortedCounts(tally map[string]int) []FieldCount {
	out := make([]FieldCount, 0, len(tally))
	for name, count := range tally {
		out = append(out, FieldCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// topTerms counts stemmed content words across descriptions and returns the
// n most frequent. Stopwords and tokens of one or two characters are skipped
// before stemming, mirroring the feature-extraction filter.
func topTerms(descriptions []string, n int) []TermCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, desc := range descriptions {
		for _, word := range strings.Fields(strings.ToLower(desc)) {
			word = strings.Trim(word, `.,;:!?()"'`)
			if len(word) <= 2 || normalize.IsStopword(word) {
				continue
			}
			stemmed, err := snowball.Stem(word, "english", true)
			if err != nil || stemmed == "" {
				stemmed = word
			}
			counts[stemmed]++
		}
	}

	terms := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
