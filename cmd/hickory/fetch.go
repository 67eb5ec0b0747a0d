package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/inspect"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <page|url|file>",
	Short: "Fetch a site page and print it as readable Markdown",
	Long: `Fetch renders one page the way the extraction pipeline sees it, which is
how the noise pattern list gets maintained: fetch a page, read what comes
out, and adjust the patterns in the config when the site's chrome changes.

The source may be a configured page name (home, food, drinks, wines, cake,
events, contact), any URL, a local HTML file, or - for standard input.

Examples:
  hickory fetch food
  hickory fetch https://thehickorykampala.com/drinks/
  hickory fetch contact --selector address
  hickory fetch food --search "pork ribs"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		selector, _ := cmd.Flags().GetString("selector")
		raw, _ := cmd.Flags().GetBool("raw")
		query, _ := cmd.Flags().GetString("search")
		topN, _ := cmd.Flags().GetInt("top")
		quiet, _ := cmd.Flags().GetBool("quiet")

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := inspect.Options{
			Source:    args[0],
			Selector:  selector,
			Raw:       raw,
			Query:     query,
			MaxBlocks: topN,
			Quiet:     quiet,
		}
		return inspect.Run(ctx, cfg, opts, os.Stdout)
	},
}

func init() {
	fetchCmd.Flags().StringP("selector", "s", "", "CSS selector to extract instead of readability content")
	fetchCmd.Flags().Bool("raw", false, "Convert the whole document without readability filtering")
	fetchCmd.Flags().String("search", "", "Rank content blocks against keyword(s) and print the best matches")
	fetchCmd.Flags().Int("top", 5, "Number of ranked blocks to print with --search")
	fetchCmd.Flags().BoolP("quiet", "q", false, "Suppress the progress spinner")

	rootCmd.AddCommand(fetchCmd)
}
