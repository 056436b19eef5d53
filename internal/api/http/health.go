package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/mind-engage/mindengage-marks/internal/metrics"
)

// HealthHandler pings the database.
func HealthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "db not ok", http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveDBPing(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	}
}
