package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-tourism-filter/docs"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/catalog"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/destination"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/filter"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/health"
)

// Config contains dependencies needed for the router setup
type Config struct {
	FilterHandler      *filter.Handler
	DestinationHandler *destination.Handler
	CatalogHandler     *catalog.Handler
	HealthHandler      *health.Handler
	Logger             *slog.Logger

	AllowedOrigins []string
	RateLimit      int // requests per IP per minute, 0 disables
}

// SetupRouter initializes and configures the application router.
// Server-wide middleware (logger, requestID, recoverer) are applied in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Health)
		r.Get("/destinations", cfg.DestinationHandler.ListDestinations)
		r.Get("/categories", cfg.CatalogHandler.ListCategories)

		r.Group(func(r chi.Router) {
			if cfg.RateLimit > 0 {
				r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
				if cfg.Logger != nil {
					cfg.Logger.Info("Rate limiting enabled for /api/v1/filter", slog.Int("per_ip_per_minute", cfg.RateLimit))
				}
			}
			r.Post("/filter", cfg.FilterHandler.FilterCategories)
		})
	})

	return r
}
