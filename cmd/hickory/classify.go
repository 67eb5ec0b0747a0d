package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Isaac25-lgtm/hickory/internal/category"
	"github.com/Isaac25-lgtm/hickory/internal/classify"
	"github.com/Isaac25-lgtm/hickory/internal/fetch"
	"github.com/Isaac25-lgtm/hickory/internal/model"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify restaurant text into a menu or review category",
	Long: `Classify predicts which website category a piece of restaurant text belongs
to, using the pre-trained TF-IDF + logistic regression model.

Text is taken from the arguments, from standard input when no arguments are
given, or from the canned examples with --example.

Examples:
  hickory classify "Grilled beef fillet with mushroom sauce"
  hickory classify --example 3
  echo "Red velvet cake with cream cheese frosting" | hickory classify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		text, err := classifyInput(cmd, args)
		if err != nil {
			return err
		}

		bundle, err := model.Load(cfg.Model)
		if err != nil {
			return err
		}

		result, err := classify.New(bundle).Classify(text)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(result)
		}

		printResult(result)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories the model can predict",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range category.All() {
			fmt.Printf("%-10s %s\n", info.Label, info.Description)
		}
		return nil
	},
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show the canned example inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, example := range classify.Examples() {
			fmt.Printf("%d. %s\n", i+1, example)
		}
		return nil
	},
}

// classifyInput resolves the text to classify from flags, arguments, or stdin.
func classifyInput(cmd *cobra.Command, args []string) (string, error) {
	if cmd.Flags().Changed("example") {
		exampleNum, _ := cmd.Flags().GetInt("example")
		examples := classify.Examples()
		if exampleNum < 1 || exampleNum > len(examples) {
			return "", fmt.Errorf("example number must be between 1 and %d", len(examples))
		}
		return examples[exampleNum-1], nil
	}

	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	// no arguments: read from stdin
	content, err := fetch.GetContent(context.Background(), "-")
	if err != nil {
		return "", err
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// printResult renders one classification for the terminal.
func printResult(result classify.Result) {
	fmt.Printf("Label:       %s\n", result.Label)
	fmt.Printf("Description: %s\n", result.Description)
	if result.Confidence != nil {
		fmt.Printf("Confidence:  %.1f%%\n", *result.Confidence*100)
	}
	if len(result.Distribution) > 0 {
		fmt.Println()
		for _, lp := range result.Distribution {
			fmt.Printf("  %-10s %5.1f%%\n", lp.Label, lp.Prob*100)
		}
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	classifyCmd.Flags().IntP("example", "e", 0, "Classify the numbered canned example (see 'hickory examples')")
	classifyCmd.Flags().Bool("json", false, "Output the result as JSON")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(examplesCmd)
}
