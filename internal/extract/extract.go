// Package extract converts fetched HTML into readable Markdown.
// It is the inspection side of the pipeline: where the scraper pulls
// individual text nodes for the dataset, extract renders whole pages
// so noise rules can be checked against what the site actually serves.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ToMarkdown extracts the main content from HTML and converts it to Markdown.
// Optional CSS selector filtering is supported.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector to filter content (empty string for main content extraction)
//   - raw: if true, skips readability extraction and converts the whole document
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Returns clean Markdown string or error if extraction/conversion fails.
func ToMarkdown(content io.Reader, selector string, raw bool, baseURL *url.URL) (string, error) {
	// a selector wins over the raw setting
	if selector != "" {
		return extractWithSelector(content, selector)
	}

	if raw {
		return convertAllHTML(content)
	}

	// default: use go-readability to extract main content
	return extractMainContent(content, baseURL)
}

// extractMainContent uses go-readability to extract the main article content
func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	// use empty URL if none provided
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return convertToMarkdown(article.Content)
}

// extractWithSelector uses a CSS selector to extract specific content
func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	// collect the HTML of all selected elements, re-wrapped in their own
	// tags so list and quote structure survives conversion
	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		html, err := s.Html()
		if err == nil {
			tagName := goquery.NodeName(s)
			htmlParts = append(htmlParts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})

	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	selectedHTML := strings.Join(htmlParts, "\n")

	return convertToMarkdown(selectedHTML)
}

// convertAllHTML converts all HTML content to Markdown without filtering
func convertAllHTML(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}

	return convertToMarkdown(string(htmlBytes))
}

// convertToMarkdown converts HTML string to clean Markdown
func convertToMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	// tidy up excessive whitespace in converted output
	converter.Use(md.Plugin(func(c *md.Converter) []md.Rule {
		return []md.Rule{
			{
				Filter: []string{"*"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					cleaned := strings.TrimSpace(content)
					result := strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
					return &result
				},
			},
		}
	}))

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	// clean up the markdown output
	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")

	return cleaned, nil
}
