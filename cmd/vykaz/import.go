package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vykaz/internal/setup/logger"
	"vykaz/pkg/vykaz"
	"vykaz/pkg/vykaz/catalog"
	"vykaz/pkg/vykaz/importer"
	"vykaz/pkg/vykaz/models"
	"vykaz/pkg/vykaz/xlsx"
)

var (
	importSheet string
	importName  string
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Import a workbook into a project JSON file",
		Long: `import detects the structure of a workbook, applies the best-scoring
template's column mapping, and parses the line items into a project.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	cmd.Flags().StringVar(&importSheet, "sheet", "", "Sheet name (default: first sheet for detection, all sheets for parsing)")
	cmd.Flags().StringVar(&importName, "name", "", "Project name (default: workbook file name)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	log := logger.New(logLevel)

	templates, err := catalog.Load(templatesPath)
	if err != nil {
		return err
	}

	wb, err := xlsx.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("workbook decode failed: %w", err)
	}

	results, err := vykaz.DetectStructure(wb, templates, vykaz.Options{SheetName: importSheet})
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}
	best := results[0]
	log.Info().
		Str("template", best.Template.ID).
		Int("score", best.Score).
		Str("confidence", string(best.Confidence)).
		Msg("best template")
	if best.Confidence == models.ConfidenceLow {
		log.Warn().Msg("low detection confidence, imported items may be incomplete")
	}

	cfg := vykaz.ApplyDetectedConfig(best, models.ImportConfig{SheetName: importSheet})

	name := importName
	if name == "" {
		base := filepath.Base(inputPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	project := importer.New(log).ParseProject(wb, cfg, name)
	return writeJSON(project)
}
