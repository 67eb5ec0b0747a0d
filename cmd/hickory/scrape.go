package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/counter"
	"github.com/Isaac25-lgtm/hickory/internal/dataset"
	"github.com/Isaac25-lgtm/hickory/internal/scrape"
	"github.com/Isaac25-lgtm/hickory/internal/spinner"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Rebuild the training dataset from the live site",
	Long: `Scrape fetches the configured pages of thehickorykampala.com, extracts menu
and review text, filters navigation noise, merges the curated rows, and
writes the deduplicated dataset CSV.

Pages that fail to load are skipped with a warning; the curated rows are
always written, so a network failure still produces a usable dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			cfg.Scrape.Output = output
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		builder, err := scrape.NewBuilder(cfg.Scrape)
		if err != nil {
			return err
		}

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// display spinner for the slow, politely paced crawl
		var sp *spinner.Spinner
		if !quiet {
			sp = spinner.New(ctx, os.Stderr, "Scraping "+cfg.Scrape.BaseURL+"...")
			sp.Start()
		}

		rows, stats, err := builder.Build(ctx)
		if sp != nil {
			sp.Stop()
		}
		if err != nil {
			return err
		}

		path, err := dataset.WriteCSVWithFallback(rows, cfg.Scrape.Output, cfg.Scrape.FallbackOutput())
		if err != nil {
			return err
		}

		fmt.Printf("Scraped %d rows from %d pages\n", stats.Scraped, len(stats.Pages))
		for _, page := range stats.Pages {
			fmt.Printf("  %-10s %d\n", page.Name, page.Count)
		}
		fmt.Printf("Curated rows: %d\n", stats.Curated)
		fmt.Printf("Dataset written to %s (%d rows after dedup)\n", path, stats.Total)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [dataset.csv]",
	Short: "Summarize a dataset CSV",
	Long: `Stats reads a dataset CSV and reports row counts per page and category,
word and token totals over the descriptions, and the most frequent stemmed
terms per category.

With no argument the configured scrape output path is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		path := cfg.Scrape.Output
		if len(args) == 1 {
			path = args[0]
		}

		rows, err := dataset.ReadCSV(path)
		if err != nil {
			return err
		}

		methodName, _ := cmd.Flags().GetString("count-method")
		method, err := counter.ParseMethod(methodName)
		if err != nil {
			return err
		}

		// words are always part of the summary; anything else becomes the
		// supplementary unit total
		var c counter.Counter
		if method != counter.Words {
			c, err = counter.NewCounter(method)
			if err != nil {
				slog.Warn("Counter unavailable, reporting words only", "method", method.String(), "error", err)
				c = nil
			}
		}

		topN, _ := cmd.Flags().GetInt("top")
		summary := dataset.Summarize(rows, topN, c)

		fmt.Printf("Dataset: %s\n", path)
		fmt.Printf("Rows:    %d\n", summary.Rows)
		fmt.Printf("Words:   %d\n", summary.Words)
		if c != nil && summary.Units >= 0 {
			fmt.Printf("Units:   %d (%s)\n", summary.Units, c.Name())
		}

		fmt.Println("\nRows per page:")
		for _, page := range summary.ByPage {
			fmt.Printf("  %-10s %4d\n", page.Name, page.Count)
		}

		if topN > 0 {
			fmt.Println("\nTop terms per category:")
			for _, cat := range summary.ByCategory {
				terms := make([]string, 0, len(cat.TopTerms))
				for _, tc := range cat.TopTerms {
					terms = append(terms, fmt.Sprintf("%s (%d)", tc.Term, tc.Count))
				}
				fmt.Printf("  %-28s %s\n", fmt.Sprintf("%s (%d rows):", cat.Name, cat.Count), strings.Join(terms, ", "))
			}
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringP("output", "o", "", "Output CSV path (overrides the configured path)")
	scrapeCmd.Flags().BoolP("quiet", "q", false, "Suppress the progress spinner")

	statsCmd.Flags().String("count-method", "tokens", "Supplementary counting method: tokens, words, or characters")
	statsCmd.Flags().Int("top", 5, "Number of top terms to show per category")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(statsCmd)
}
