package http

import (
	"io"
	"net/http"

	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

const paramDate = "date"

// newReportHandler handles GET /reports/{date}, date formatted as YYYY.MM.DD.
func newReportHandler(reportService reports.ReportService) appHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		rc, err := reportService.OpenReport(r.Context(), chi.URLParam(r, paramDate))
		if err != nil {
			return err
		}
		defer rc.Close()

		w.Header().Set(headerContentType, contentTypeHTML)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			// headers are already sent, so the client only sees a truncated body
			loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to stream report")
		}
		return nil
	}
}
