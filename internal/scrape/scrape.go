// Package scrape builds the restaurant text dataset. It crawls the site's
// public pages, extracts prose from content tags, drops navigation noise,
// and merges the result with the curated menu, review, and service records
// before deduplicating on description text.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/projectdiscovery/ratelimit"

	"github.com/Isaac25-lgtm/hickory/internal/config"
	"github.com/Isaac25-lgtm/hickory/internal/dataset"
)

// chromeClasses marks elements whose own class attribute identifies theme
// chrome rather than menu content.
var chromeClasses = []string{"nav", "footer", "menu-item", "widget"}

// Stats reports what one crawl produced.
type Stats struct {
	// Pages holds extracted row counts per page in crawl order.
	// A page that failed to fetch reports zero rows.
	Pages []dataset.FieldCount

	Scraped int // rows extracted from the live site
	Curated int // curated rows merged in
	Total   int // unique rows after deduplication
}

// Builder crawls the configured pages and assembles the dataset.
type Builder struct {
	cfg    config.ScrapeConfig
	client *http.Client
	filter *NoiseFilter
}

// NewBuilder creates a Builder from the scrape configuration.
// Returns an error if any configured noise pattern fails to compile.
func NewBuilder(cfg config.ScrapeConfig) (*Builder, error) {
	filter, err := NewNoiseFilter(cfg.MinTextLen, cfg.NoisePatterns)
	if err != nil {
		return nil, err
	}
	return &Builder{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		filter: filter,
	}, nil
}

// Build crawls every configured page, merges the curated records, and
// returns the deduplicated dataset. A page that cannot be fetched is
// logged and skipped rather than failing the whole crawl; the curated
// records alone already form a usable dataset.
func (b *Builder) Build(ctx context.Context) ([]dataset.Row, *Stats, error) {
	limiter := ratelimit.New(ctx, 1, time.Duration(b.cfg.DelaySeconds)*time.Second)
	defer limiter.Stop()

	stats := &Stats{Pages: make([]dataset.FieldCount, 0, len(b.cfg.Pages))}
	var rows []dataset.Row
	for _, page := range b.cfg.Pages {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		limiter.Take()

		pageURL := b.cfg.BaseURL + page.Path
		slog.Debug("Fetching page", "page", page.Name, "url", pageURL)
		doc, err := b.fetch(ctx, pageURL)
		if err != nil {
			slog.Warn("Skipping page", "page", page.Name, "error", err)
			stats.Pages = append(stats.Pages, dataset.FieldCount{Name: page.Name})
			continue
		}

		extracted := b.extract(doc, page)
		slog.Debug("Extracted page content", "page", page.Name, "rows", len(extracted))
		stats.Pages = append(stats.Pages, dataset.FieldCount{Name: page.Name, Count: len(extracted)})
		rows = append(rows, extracted...)
	}
	stats.Scraped = len(rows)

	curated := CuratedRows()
	stats.Curated = len(curated)
	rows = append(rows, curated...)

	rows = dataset.Dedup(rows)
	stats.Total = len(rows)
	return rows, stats, nil
}

// fetch retrieves one page and parses it into a goquery document.
func (b *Builder) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", b.cfg.UserAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}
	return doc, nil
}

// extract dispatches to the extraction role configured for the page.
func (b *Builder) extract(doc *goquery.Document, page config.PageConfig) []dataset.Row {
	switch page.Kind {
	case config.KindHome:
		return b.extractHome(doc, page.Name)
	case config.KindContact:
		return b.extractContact(doc, page.Name)
	default:
		return b.extractMenu(doc, page.Name)
	}
}

// extractHome pulls the restaurant description and overview prose from
// paragraph and blockquote tags.
func (b *Builder) extractHome(doc *goquery.Document, pageName string) []dataset.Row {
	var rows []dataset.Row
	doc.Find("p, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := CleanText(s.Text())
		if text == "" || b.filter.IsNoise(text) {
			return
		}
		rows = append(rows, dataset.Row{
			SourcePage:  pageName,
			Category:    "description",
			Description: text,
		})
	})
	return rows
}

// extractMenu pulls menu items from a listing page. Only p and li tags are
// read because divs and spans capture whole-page dumps, and anything inside
// nav, footer, or header elements or carrying chrome class names is skipped.
func (b *Builder) extractMenu(doc *goquery.Document, pageName string) []dataset.Row {
	var rows []dataset.Row
	doc.Find("p, li").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("nav, footer, header").Length() > 0 {
			return
		}
		classes := strings.ToLower(s.AttrOr("class", ""))
		for _, chrome := range chromeClasses {
			if strings.Contains(classes, chrome) {
				return
			}
		}

		text := CleanText(s.Text())
		if text == "" || b.filter.IsNoise(text) {
			return
		}
		rows = append(rows, dataset.Row{
			SourcePage:  pageName,
			Category:    capitalize(pageName),
			Description: text,
		})
	})
	return rows
}

// extractContact pulls location and business info from paragraph and
// address tags outside the page chrome.
func (b *Builder) extractContact(doc *goquery.Document, pageName string) []dataset.Row {
	var rows []dataset.Row
	doc.Find("p, address").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("nav, footer, header").Length() > 0 {
			return
		}
		text := CleanText(s.Text())
		if text == "" || b.filter.IsNoise(text) {
			return
		}
		rows = append(rows, dataset.Row{
			SourcePage:  pageName,
			Category:    "location_info",
			Description: text,
		})
	})
	return rows
}

// capitalize upper-cases the first letter and lower-cases the rest,
// turning a page name like "food" into the category "Food".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
