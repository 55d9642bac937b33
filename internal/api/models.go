package api

import (
	"vykaz/pkg/vykaz/models"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SearchRequest carries a query and optional filters.
type SearchRequest struct {
	Query   string               `json:"query"`
	Filters models.SearchFilters `json:"filters"`
}

// SearchResponse carries ranked search hits.
type SearchResponse struct {
	Query   string                    `json:"query"`
	Results []models.SearchResultItem `json:"results"`
	Count   int                       `json:"count"`
}

// SuggestionsResponse carries query suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// DetectRequest carries a decoded workbook grid. Templates override the
// server catalog when given; SheetName selects a sheet, empty means first.
type DetectRequest struct {
	Workbook  *models.Workbook        `json:"workbook"`
	Templates []models.ImportTemplate `json:"templates,omitempty"`
	SheetName string                  `json:"sheet_name,omitempty"`
}

// DetectResponse carries ranked detection results for one workbook.
type DetectResponse struct {
	BookName string                   `json:"book_name"`
	Results  []models.DetectionResult `json:"results"`
}

// ProjectSummary describes one loaded project.
type ProjectSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sheets int    `json:"sheets"`
	Items  int    `json:"items"`
}
