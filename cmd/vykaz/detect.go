package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vykaz/pkg/vykaz"
	"vykaz/pkg/vykaz/catalog"
	"vykaz/pkg/vykaz/models"
	"vykaz/pkg/vykaz/xlsx"
)

var detectSheet string

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [input.xlsx]",
		Short: "Detect budget-sheet structure in a workbook",
		Long: `detect decodes a workbook, scans the selected sheet for a header row and
code convention, and scores every catalog template against it.`,
		Args: cobra.ExactArgs(1),
		RunE: runDetect,
	}
	cmd.Flags().StringVar(&detectSheet, "sheet", "", "Sheet name (default: first sheet)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	templates, err := catalog.Load(templatesPath)
	if err != nil {
		return err
	}

	wb, err := xlsx.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("workbook decode failed: %w", err)
	}

	results, err := vykaz.DetectStructure(wb, templates, vykaz.Options{SheetName: detectSheet})
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	out := struct {
		BookName string                   `json:"book_name"`
		Results  []models.DetectionResult `json:"results"`
	}{
		BookName: wb.BookName,
		Results:  results,
	}
	return writeJSON(out)
}
