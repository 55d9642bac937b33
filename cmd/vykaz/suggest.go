package main

import (
	"github.com/spf13/cobra"

	"vykaz/internal/loader"
	"vykaz/internal/setup/logger"
	"vykaz/pkg/vykaz"
)

var suggestProjectsGlob string

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List query suggestions from the loaded projects",
		Args:  cobra.NoArgs,
		RunE:  runSuggest,
	}
	cmd.Flags().StringVar(&suggestProjectsGlob, "projects", "projects/*.json", "Project files glob")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel)
	projects, err := loader.LoadGlob(suggestProjectsGlob, log)
	if err != nil {
		return err
	}
	return writeJSON(vykaz.Suggestions(projects))
}
