package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/model"
	"github.com/Isaac25-lgtm/hickory/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier over HTTP",
	Long: `Serve loads the model once and exposes it to a presentation shell:

  POST /api/v1/classify    classify the text in {"text": ...}
  GET  /api/v1/categories  the label and description table
  GET  /api/v1/examples    the canned example inputs
  GET  /healthz            liveness and the active model backend

The server shuts down gracefully on interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		bundle, err := model.Load(cfg.Model)
		if err != nil {
			return err
		}

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(os.Stderr, "Serving hickory API on %s (backend: %s)\n", cfg.Server.Addr, bundle.Meta.Backend)
		return server.New(bundle).ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides the configured address)")

	rootCmd.AddCommand(serveCmd)
}
