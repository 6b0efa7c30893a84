package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/pulsewell/health-insights-api/docs"
	"github.com/pulsewell/health-insights-api/internal/api/handler"
	"github.com/pulsewell/health-insights-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler     *handler.UserHandler
	recordHandler   *handler.HealthRecordHandler
	insightsHandler *handler.InsightsHandler
	logger          *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	recordHandler *handler.HealthRecordHandler,
	insightsHandler *handler.InsightsHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		userHandler:     userHandler,
		recordHandler:   recordHandler,
		insightsHandler: insightsHandler,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.RequestLogger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Raw records (nested under users)
			r.Route("/{userId}/vitals", func(r chi.Router) {
				r.Post("/", rt.recordHandler.CreateVitalSign)
				r.Get("/", rt.recordHandler.ListVitals)
			})
			r.Route("/{userId}/journal", func(r chi.Router) {
				r.Post("/", rt.recordHandler.CreateJournalEntry)
				r.Get("/", rt.recordHandler.ListJournal)
			})

			// Insights
			r.Route("/{userId}/insights", func(r chi.Router) {
				r.Get("/", rt.insightsHandler.GetInsights)
				r.Delete("/cache", rt.insightsHandler.ClearCache)
				r.Get("/trends", rt.insightsHandler.GetTrends)
			})
		})

		// Instance-level cache observability
		r.Route("/insights/cache/stats", func(r chi.Router) {
			r.Get("/", rt.insightsHandler.GetCacheStats)
			r.Post("/reset", rt.insightsHandler.ResetCacheStats)
		})
	})

	return r
}
