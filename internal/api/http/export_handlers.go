package http

import (
	"bytes"
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-marks/internal/export"
	"github.com/mind-engage/mindengage-marks/internal/results"
)

const defaultExportLimit = 100

// RowLister is the read side the export needs; *results.SQLStore implements it.
type RowLister interface {
	Rows(ctx context.Context, limit int) ([]results.Row, error)
}

func ExportResultsHandler(rows RowLister, maxLimit int, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := clampLimit(parseIntDefault(r.URL.Query().Get("limit"), defaultExportLimit), maxLimit)
		list, err := rows.Rows(r.Context(), limit)
		if err != nil {
			log.Error("export results", zap.Error(err))
			http.Error(w, "could not load results", http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := export.WriteResults(&buf, list); err != nil {
			log.Error("write workbook", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
		_, _ = buf.WriteTo(w)
	}
}
