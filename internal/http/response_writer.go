package http

import (
	"net/http"

	"log-analyzer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// statusWriter records the status code and service error of a response for the middleware chain.
type statusWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newStatusWriter(w http.ResponseWriter, protoMajor int) *statusWriter {
	return &statusWriter{WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor)}
}

func (w *statusWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *statusWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}

// statusOf returns the status written to w. Handlers that never call WriteHeader answer 200.
func statusOf(w http.ResponseWriter) int {
	if sw, ok := w.(*statusWriter); ok && sw.Status() != 0 {
		return sw.Status()
	}
	return http.StatusOK
}

func errorCodeOf(w http.ResponseWriter) string {
	if sw, ok := w.(*statusWriter); ok {
		return sw.ErrorCode()
	}
	return ""
}
