package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/platform/config"
	"paydesk/internal/platform/metrics"
	"paydesk/internal/transport/http/api"
	payrollhandler "paydesk/internal/transport/http/handlers/payroll"
	textstatshandler "paydesk/internal/transport/http/handlers/textstats"
	"paydesk/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	collector := metrics.New()

	router := NewRouter(cfg, collector)

	log.Printf("paydesk server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter builds the full middleware chain and API routes.
func NewRouter(cfg config.Config, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		payrollhandler.NewHandler(collector).RegisterRoutes(r)
		textstatshandler.NewHandler(collector, cfg.AnalyzerTopWords).RegisterRoutes(r)
	})

	return router
}
