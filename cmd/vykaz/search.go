package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vykaz/internal/loader"
	"vykaz/internal/setup/logger"
	"vykaz/pkg/vykaz"
	"vykaz/pkg/vykaz/models"
)

var (
	searchProjectsGlob string
	searchProjectIDs   []string
	searchGroups       []string
	searchMinPrice     float64
	searchMaxPrice     float64
	searchHasGroup     string
	searchLimit        int
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search line items across project files",
		Long: `search ranks line items from the loaded project files against a free-text
query. Quoted phrases match exactly, +term requires an exact term and -term
excludes one; everything else matches fuzzily.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
	cmd.Flags().StringVar(&searchProjectsGlob, "projects", "projects/*.json", "Project files glob")
	cmd.Flags().StringSliceVar(&searchProjectIDs, "project-id", nil, "Limit to project ids")
	cmd.Flags().StringSliceVar(&searchGroups, "group", nil, "Limit to group labels")
	cmd.Flags().Float64Var(&searchMinPrice, "min-price", 0, "Minimum total price (inclusive)")
	cmd.Flags().Float64Var(&searchMaxPrice, "max-price", 0, "Maximum total price (inclusive)")
	cmd.Flags().StringVar(&searchHasGroup, "has-group", "", "Require a group label: true or false")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (0 = all)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel)
	projects, err := loader.LoadGlob(searchProjectsGlob, log)
	if err != nil {
		return err
	}

	filters := models.SearchFilters{
		ProjectIDs: searchProjectIDs,
		Groups:     searchGroups,
	}
	if cmd.Flags().Changed("min-price") {
		filters.MinTotalPrice = &searchMinPrice
	}
	if cmd.Flags().Changed("max-price") {
		filters.MaxTotalPrice = &searchMaxPrice
	}
	switch searchHasGroup {
	case "":
	case "true":
		v := true
		filters.HasGroup = &v
	case "false":
		v := false
		filters.HasGroup = &v
	default:
		return fmt.Errorf("invalid has-group value: %s (must be true or false)", searchHasGroup)
	}

	query := strings.Join(args, " ")
	results, err := vykaz.Search(projects, query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	out := struct {
		Query   string                    `json:"query"`
		Results []models.SearchResultItem `json:"results"`
		Count   int                       `json:"count"`
	}{
		Query:   query,
		Results: results,
		Count:   len(results),
	}
	return writeJSON(out)
}
