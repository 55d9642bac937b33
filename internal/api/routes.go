package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"vykaz/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/search").
			To(handler.Search).
			Doc("Search line items across projects").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Reads(SearchRequest{}).
			Writes(SearchResponse{}).
			Returns(200, "OK", SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/search/suggestions").
			To(handler.Suggestions).
			Doc("Query suggestions from group labels and seed terms").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Writes(SuggestionsResponse{}).
			Returns(200, "OK", SuggestionsResponse{}))

	ws.
		Route(ws.POST("/detect").
			To(handler.Detect).
			Doc("Detect budget-sheet structure in a decoded workbook").
			Metadata(restfulspec.KeyOpenAPITags, []string{"detect"}).
			Reads(DetectRequest{}).
			Writes(DetectResponse{}).
			Returns(200, "OK", DetectResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Sheet Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/detect/upload").
			To(handler.DetectUpload).
			Doc("Detect budget-sheet structure in an uploaded .xlsx file").
			Metadata(restfulspec.KeyOpenAPITags, []string{"detect"}).
			Consumes("multipart/form-data").
			Param(ws.FormParameter("file", "Workbook file (.xlsx)").DataType("file")).
			Param(ws.QueryParameter("sheet", "Sheet name, empty for the first sheet").DataType("string").Required(false)).
			Writes(DetectResponse{}).
			Returns(200, "OK", DetectResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Sheet Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/projects").
			To(handler.Projects).
			Doc("List loaded projects").
			Metadata(restfulspec.KeyOpenAPITags, []string{"projects"}).
			Writes([]ProjectSummary{}).
			Returns(200, "OK", []ProjectSummary{}))

	container.Add(ws)
}
