package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-analyzer/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providedID string
	}{
		{name: "generates ULID when missing"},
		{name: "keeps caller id", providedID: "custom-request-id-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seenID string
			handler := mwRequestID(loggers.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = requestID(r)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/runs", nil)
			if tt.providedID != "" {
				req.Header.Set(headerRequestID, tt.providedID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if tt.providedID != "" {
				assert.Equal(t, tt.providedID, seenID)
			} else {
				assert.Len(t, seenID, 26)
			}
			assert.Equal(t, seenID, rr.Header().Get(headerRequestID), "request id is echoed back")
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "report renderer exploded"},
		{name: "error panic", panic: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := mwRequestID(loggers.Nop())(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			req := httptest.NewRequest(http.MethodGet, "/reports/2017.06.30", nil)
			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRecoverer_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/runs", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestSetupMiddleware_LogsCompletedRequests(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	router := chi.NewRouter()
	setupMiddleware(router, zerolog.New(&logs))

	router.Get("/reports/{date}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/2017.06.30", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "/reports/2017.06.30", entry[loggers.FieldHttpPath])
	assert.Equal(t, float64(http.StatusNotFound), entry[loggers.FieldHttpStatus])
	assert.NotEmpty(t, entry[loggers.FieldRequestID])

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
