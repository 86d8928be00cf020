package http

import (
	"net/http"

	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Post("/runs", errorHandlingAdapter(newRunHandler(reportService)))
	router.Get("/reports/{"+paramDate+"}", errorHandlingAdapter(newReportHandler(reportService)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
