// Package inspect renders site pages as Markdown for manual review.
// The dataset builder drops page text through noise rules tuned against
// the live site; inspect shows a page the way the pipeline sees it, so
// those rules can be checked and updated when the site's markup changes.
package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/chriscorrea/bm25md"

	"github.com/Isaac25-lgtm/hickory/internal/config"
	"github.com/Isaac25-lgtm/hickory/internal/extract"
	"github.com/Isaac25-lgtm/hickory/internal/fetch"
	"github.com/Isaac25-lgtm/hickory/internal/spinner"
)

// defaultMaxBlocks is how many ranked blocks a query prints.
const defaultMaxBlocks = 5

// Options control a page inspection.
type Options struct {
	Source    string // page name from the scrape config, URL, file path, or "-" for stdin
	Selector  string // optional CSS selector override
	Raw       bool   // skip readability extraction and convert the whole document
	Query     string // optional query; when set, only the top-ranked blocks print
	MaxBlocks int    // ranked blocks to print for a query (0 = default)
	Quiet     bool   // suppress the progress spinner
}

// Run fetches one page, renders it to Markdown, and writes it to out.
// With a query set, the rendered content is split into blocks, ranked by
// relevance, and only the best blocks are written.
func Run(ctx context.Context, cfg *config.Config, opts Options, out io.Writer) error {
	source, baseURL := resolveSource(cfg.Scrape, opts.Source)

	slog.Debug("Inspecting source", "source", source, "selector", opts.Selector, "raw", opts.Raw)

	content, err := fetch.GetContent(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", source, err)
	}
	defer content.Close()

	markdown, err := extract.ToMarkdown(content, opts.Selector, opts.Raw, baseURL)
	if err != nil {
		return fmt.Errorf("failed to extract content from %q: %w", source, err)
	}

	if strings.TrimSpace(opts.Query) == "" {
		fmt.Fprintln(out, markdown)
		return nil
	}

	ranked := rankBlocks(ctx, markdown, opts)
	if len(ranked) == 0 {
		return fmt.Errorf("no content blocks to rank in %q", source)
	}

	fmt.Fprintln(out, strings.Join(ranked, "\n\n"))
	return nil
}

// resolveSource maps a configured page name to its full URL; anything else
// is passed through to fetch untouched. The parsed URL, when available,
// gives readability extraction its base for resolving relative links.
func resolveSource(sc config.ScrapeConfig, source string) (string, *url.URL) {
	for _, page := range sc.Pages {
		if strings.EqualFold(page.Name, source) {
			full := strings.TrimRight(sc.BaseURL, "/") + page.Path
			u, err := url.Parse(full)
			if err != nil {
				return full, nil
			}
			return full, u
		}
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if u, err := url.Parse(source); err == nil {
			return source, u
		}
	}

	return source, nil
}

// rankBlocks scores Markdown blocks against the query using BM25md
// field-weighted ranking and returns the top blocks in relevance order.
func rankBlocks(ctx context.Context, markdown string, opts Options) []string {
	blocks := splitBlocks(markdown, defaultBlockSize)
	if len(blocks) == 0 {
		return nil
	}

	// display spinner for longer operations
	if !opts.Quiet {
		sp := spinner.New(ctx, os.Stderr, "Ranking blocks...")
		sp.Start()
		defer sp.Stop()
	}

	// build a BM25md corpus with default field weights and parameters
	corpus := bm25md.NewCorpus()
	parser := bm25md.NewMarkdownFieldParser()
	for i, block := range blocks {
		fields := parser.ParseDocument(block)
		corpus.AddDocument(bm25md.Document{
			ID:       i,
			Fields:   fields,
			Original: block,
		})
	}

	type blockScore struct {
		block string
		score float64
	}
	scored := make([]blockScore, 0, len(blocks))
	for i, block := range blocks {
		scored = append(scored, blockScore{block: block, score: corpus.Score(opts.Query, i)})
	}

	// highest first; stable so tied blocks keep document order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := opts.MaxBlocks
	if limit <= 0 {
		limit = defaultMaxBlocks
	}
	if limit > len(scored) {
		limit = len(scored)
	}

	slog.Debug("Ranked content blocks", "blockCount", len(blocks), "returned", limit)

	result := make([]string, 0, limit)
	for _, bs := range scored[:limit] {
		result = append(result, bs.block)
	}
	return result
}
