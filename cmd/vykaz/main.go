// Package main provides the vykaz CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	logLevel      string
	templatesPath string
	pretty        bool
	outputPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "vykaz",
		Version: version,
		Short:   "Analyze and search construction budget spreadsheets",
		Long: `vykaz detects the structure of budget spreadsheets (header row, column
meanings, code convention), imports line items, and searches items across
projects with weighted fuzzy matching.`,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&templatesPath, "templates", "", "Template catalog path (default: configs/templates.yaml, then built-ins)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// writeJSON serializes v to the --output path or stdout.
func writeJSON(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
