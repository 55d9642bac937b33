package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"vykaz/internal/api/middleware"
	"vykaz/pkg/vykaz"
	"vykaz/pkg/vykaz/models"
	"vykaz/pkg/vykaz/xlsx"
)

const version = "1.0.0"

// Handler serves detection and search over the loaded project corpus. The
// corpus and catalog are read-only after construction, so handlers may run
// concurrently without coordination.
type Handler struct {
	projects []models.Project
	catalog  []models.ImportTemplate
	logger   *zerolog.Logger
}

// NewHandler creates a Handler over a project corpus and template catalog.
func NewHandler(projects []models.Project, catalog []models.ImportTemplate, logger *zerolog.Logger) *Handler {
	return &Handler{
		projects: projects,
		catalog:  catalog,
		logger:   logger,
	}
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version,
	})
}

// Search handles POST /api/v1/search.
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	var searchReq SearchRequest
	if err := req.ReadEntity(&searchReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	results, err := vykaz.Search(h.projects, searchReq.Query, searchReq.Filters)
	if err != nil {
		h.logger.Error().Err(err).Str("query", searchReq.Query).Msg("Search failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.SearchResultItem{}
	}

	h.logger.Info().
		Str("query", searchReq.Query).
		Int("results", len(results)).
		Msg("Search complete")

	resp.WriteHeaderAndEntity(http.StatusOK, SearchResponse{
		Query:   searchReq.Query,
		Results: results,
		Count:   len(results),
	})
}

// Suggestions handles GET /api/v1/search/suggestions.
func (h *Handler) Suggestions(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, SuggestionsResponse{
		Suggestions: vykaz.Suggestions(h.projects),
	})
}

// Detect handles POST /api/v1/detect with a decoded workbook grid.
func (h *Handler) Detect(req *restful.Request, resp *restful.Response) {
	var detectReq DetectRequest
	if err := req.ReadEntity(&detectReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	h.detect(resp, detectReq.Workbook, detectReq.Templates, detectReq.SheetName)
}

// DetectUpload handles POST /api/v1/detect/upload with an .xlsx file in the
// "file" form field.
func (h *Handler) DetectUpload(req *restful.Request, resp *restful.Response) {
	file, header, err := req.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	defer file.Close()

	wb, err := xlsx.DecodeReader(file, header.Filename)
	if err != nil {
		h.logger.Error().Err(err).Str("file", header.Filename).Msg("Workbook decode failed")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	h.detect(resp, wb, nil, req.QueryParameter("sheet"))
}

func (h *Handler) detect(resp *restful.Response, wb *models.Workbook, templates []models.ImportTemplate, sheetName string) {
	if len(templates) == 0 {
		templates = h.catalog
	}

	results, err := vykaz.DetectStructure(wb, templates, vykaz.Options{SheetName: sheetName})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, vykaz.ErrSheetNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, vykaz.ErrEmptyCatalog) {
			status = http.StatusBadRequest
		}
		h.logger.Error().Err(err).Msg("Detection failed")
		middleware.HandleError(resp, err, status)
		return
	}

	bookName := ""
	if wb != nil {
		bookName = wb.BookName
	}
	h.logger.Info().
		Str("book", bookName).
		Int("templates", len(results)).
		Msg("Detection complete")

	resp.WriteHeaderAndEntity(http.StatusOK, DetectResponse{
		BookName: bookName,
		Results:  results,
	})
}

// Projects handles GET /api/v1/projects.
func (h *Handler) Projects(req *restful.Request, resp *restful.Response) {
	summaries := make([]ProjectSummary, 0, len(h.projects))
	for _, p := range h.projects {
		items := 0
		for _, s := range p.Sheets {
			items += len(s.Items)
		}
		summaries = append(summaries, ProjectSummary{
			ID:     p.ID,
			Name:   p.Name,
			Sheets: len(p.Sheets),
			Items:  items,
		})
	}
	resp.WriteHeaderAndEntity(http.StatusOK, summaries)
}
