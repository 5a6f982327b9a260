package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"insightapi/application/commands/bus"
	querybus "insightapi/application/queries/bus"
	"insightapi/application/ports"
	"insightapi/application/services"
	"insightapi/infrastructure/config"
	"insightapi/interfaces/http/rest/handlers"
	"insightapi/interfaces/http/rest/middleware"
	"insightapi/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	generation *services.GenerationService
	assembler  ports.ReportAssembler
	validator  *auth.JWTValidator
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	generation *services.GenerationService,
	assembler ports.ReportAssembler,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		generation: generation,
		assembler:  assembler,
		validator:  validator,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		analysisHandler := handlers.NewAnalysisHandler(rt.generation, rt.logger)
		r.Post("/analyses", analysisHandler.Generate)

		insightHandler := handlers.NewInsightHandler(rt.commandBus, rt.queryBus, rt.logger)
		exportHandler := handlers.NewExportHandler(rt.queryBus, rt.assembler, rt.logger)

		r.Route("/insights", func(r chi.Router) {
			r.Post("/", insightHandler.Save)
			r.Get("/", insightHandler.List)
			r.Get("/{id}", insightHandler.Get)
			r.Delete("/{id}", insightHandler.Delete)
			r.Get("/{id}/report", exportHandler.ExportSaved)
		})

		r.Post("/reports", exportHandler.ExportPayload)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
