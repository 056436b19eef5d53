package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-marks/internal/metrics"
	"github.com/mind-engage/mindengage-marks/internal/results"
)

type Deps struct {
	DB      *sql.DB
	Store   *results.SQLStore
	Service *results.Service
	Log     *zap.Logger

	RateLimitPerMin int // 0 disables
	RecentLimitMax  int
	CORSOrigins     []string
}

func NewRouter(d Deps) chi.Router {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, AccessLog(log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(SecurityHeaders)

	limit := func(h http.Handler) http.Handler { return h }
	if d.RateLimitPerMin > 0 {
		limit = NewRateLimiter(d.RateLimitPerMin).Handler
	}

	r.Get("/", PageHandler(d.Service, log))
	r.With(limit).Post("/", SubmitFormHandler(d.Service, log))
	r.Get("/static/page.css", StylesheetHandler())
	r.Get("/results.xlsx", ExportResultsHandler(d.Store, d.RecentLimitMax, log))

	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
		ar.Get("/results", ListResultsHandler(d.Store, d.RecentLimitMax, log))
		ar.With(limit).Post("/results", SubmitResultHandler(d.Service))
	})

	r.Get("/healthz", HealthHandler(d.DB))
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Handle("/metrics", metrics.Handler())
	return r
}
