package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-marks/internal/results"
)

// ListResultsHandler returns recent summaries, newest first.
func ListResultsHandler(store results.Store, maxLimit int, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := clampLimit(parseIntDefault(r.URL.Query().Get("limit"), results.RecentLimit), maxLimit)
		list, err := store.Recent(r.Context(), limit)
		if err != nil {
			log.Error("list results", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not load results"})
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// SubmitResultHandler accepts {"name": "...", "s1": "..", ..., "s5": ".."}.
func SubmitResultHandler(svc *results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		v := svc.Submit(r.Context(), results.FormFromMap(body))
		switch {
		case v.Failure != "":
			writeJSON(w, http.StatusInternalServerError, v)
		case len(v.Errors) > 0:
			writeJSON(w, http.StatusUnprocessableEntity, v)
		default:
			writeJSON(w, http.StatusCreated, v)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}

func clampLimit(n, max int) int {
	if max > 0 && n > max {
		return max
	}
	return n
}
