package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/config"
)

// loadConfig reads the configuration file named by the persistent flag.
// A missing file is not an error; the compiled-in defaults for
// thehickorykampala.com apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "hickory",
	Short: "Restaurant text classifier and dataset tools for The Hickory Kampala",
	Long: `Hickory classifies restaurant text into menu and review categories using a
model pre-trained on content from thehickorykampala.com, and maintains the
website dataset that model was trained on.

Examples:
  hickory classify "Grilled beef fillet with mushroom sauce"
  hickory classify --example 2
  hickory scrape
  hickory stats
  hickory fetch food --search "pork ribs"
  hickory serve`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// configure logging pending debug flag
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "hickory.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
