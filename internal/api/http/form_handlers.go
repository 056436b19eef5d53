package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-marks/internal/render"
	"github.com/mind-engage/mindengage-marks/internal/results"
)

const maxFormBytes = 64 << 10

// PageHandler serves the initial load.
func PageHandler(svc *results.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePage(w, log, http.StatusOK, svc.Page(r.Context()))
	}
}

// SubmitFormHandler handles a POST of the marks form.
func SubmitFormHandler(svc *results.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		v := svc.Submit(r.Context(), results.FormFromValues(r.PostForm))
		status := http.StatusOK
		if v.Failure != "" {
			status = http.StatusInternalServerError
		}
		writePage(w, log, status, v)
	}
}

func StylesheetHandler() http.HandlerFunc {
	css := render.Stylesheet()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(css)
	}
}

func writePage(w http.ResponseWriter, log *zap.Logger, status int, v results.View) {
	var buf bytes.Buffer
	if err := render.Page(&buf, v); err != nil {
		log.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
