package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router chi.Router, httpLogger loggers.Logger) {
	router.Use(
		mwRequestID(httpLogger),
		mwStatusWriter,
		mwObserve,
		mwRecoverer,
	)
}

// mwRequestID reuses the caller's x-request-id or assigns a ULID, and puts a request-scoped logger in the context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := httpLogger.With().Str(loggers.FieldRequestID, id).Logger().WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwStatusWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newStatusWriter(w, r.ProtoMajor), r)
	})
}

// mwObserve records request metrics labelled by route pattern, then logs the completed request.
func mwObserve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := statusOf(w)
		statusLabel := strconv.Itoa(status)

		metricRequestsTotal.WithLabelValues(r.Method, route, statusLabel, errorCodeOf(w)).Inc()
		metricRequestDuration.WithLabelValues(r.Method, route, statusLabel).Observe(elapsed.Seconds())

		loggers.Ctx(r.Context()).Info().
			Str(loggers.FieldHttpMethod, r.Method).
			Str(loggers.FieldHttpPath, r.URL.Path).
			Int(loggers.FieldHttpStatus, status).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("request completed")
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 error response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}
