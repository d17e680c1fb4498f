package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"imperial/commercial-routes/internal/api"
	"imperial/commercial-routes/internal/db"
	"imperial/commercial-routes/internal/logging"
	"imperial/commercial-routes/internal/metrics"
	"imperial/commercial-routes/internal/middleware"
)

// RegisterRoutes builds the Chi router with the full middleware chain and
// the /api/routes surface.
func RegisterRoutes(deps *api.Dependencies, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	handler := api.NewRoutesHandler(deps.Services.Routes)

	r.Route("/api/routes", func(r chi.Router) {
		r.Get("/", handler.GetRoutes())
		r.Post("/PriceBreakDown", handler.PriceBreakDown())
		r.Post("/OptimalAircraft", handler.OptimalAircraft())
	})

	return r
}
