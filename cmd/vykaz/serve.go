package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vykaz/internal/api"
	"vykaz/internal/api/middleware"
	"vykaz/internal/loader"
	"vykaz/pkg/vykaz/catalog"
)

var (
	servePort         string
	serveProjectsGlob string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve detection and search over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&servePort, "port", "", "Listen port (default: $VYKAZ_API_PORT or 18080)")
	cmd.Flags().StringVar(&serveProjectsGlob, "projects", "", "Project files glob (default: $VYKAZ_PROJECTS_GLOB or projects/*.json)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	if servePort == "" {
		servePort = os.Getenv("VYKAZ_API_PORT")
	}
	if servePort == "" {
		servePort = "18080"
	}
	if serveProjectsGlob == "" {
		serveProjectsGlob = os.Getenv("VYKAZ_PROJECTS_GLOB")
	}
	if serveProjectsGlob == "" {
		serveProjectsGlob = "projects/*.json"
	}

	templates, err := catalog.Load(templatesPath)
	if err != nil {
		return err
	}
	projects, err := loader.LoadGlob(serveProjectsGlob, logger)
	if err != nil {
		return err
	}

	handler := api.NewHandler(projects, templates, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", servePort)
	logger.Info().Str("address", addr).Msg("Starting vykaz API")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "vykaz API",
			Description: "Budget-sheet structure detection and cross-project item search",
			Version:     version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "detect", Description: "Structure detection"}},
		{TagProps: spec.TagProps{Name: "search", Description: "Item search"}},
		{TagProps: spec.TagProps{Name: "projects", Description: "Loaded projects"}},
	}
}
