package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/model"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect the pre-trained model artifacts",
}

var modelInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show details of the loaded model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		bundle, err := model.Load(cfg.Model)
		if err != nil {
			return err
		}

		meta := bundle.Meta
		fmt.Printf("Backend:    %s\n", meta.Backend)
		fmt.Printf("Features:   %d\n", meta.Dim)
		fmt.Printf("Classes:    %s\n", strings.Join(meta.Classes, ", "))
		fmt.Printf("Vectorizer: %s\n", meta.VectorizerPath)
		fmt.Printf("Classifier: %s\n", meta.ClassifierPath)
		return nil
	},
}

func init() {
	modelCmd.AddCommand(modelInfoCmd)
	rootCmd.AddCommand(modelCmd)
}
