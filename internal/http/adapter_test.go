package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedCode     string
		expectedMessage  string
	}{
		{
			name:             "invalid argument",
			err:              svcerrors.NewInvalidArgumentError("RPT_1003", "report date must be formatted as YYYY.MM.DD", nil),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "invalid_argument",
			expectedCode:     "RPT_1003",
			expectedMessage:  "report date must be formatted as YYYY.MM.DD",
		},
		{
			name:             "not found",
			err:              svcerrors.NewNotFoundError("RPT_1000", "log directory not found", nil),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: "not_found",
			expectedCode:     "RPT_1000",
			expectedMessage:  "log directory not found",
		},
		{
			name:             "unprocessable",
			err:              svcerrors.NewUnprocessableError("RPT_1001", "too many unparsed lines", assert.AnError),
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedCategory: "unprocessable",
			expectedCode:     "RPT_1001",
			expectedMessage:  "too many unparsed lines",
		},
		{
			name:             "internal error hides the cause",
			err:              svcerrors.NewInternalError("RPT_9002", assert.AnError),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "RPT_9002",
			expectedMessage:  "internal server error",
		},
		{
			name:             "plain error",
			err:              assert.AnError,
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "SYS_9001",
			expectedMessage:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := errorHandlingAdapter(func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			})

			req := httptest.NewRequest(http.MethodPost, "/runs", nil)
			req.Header.Set(headerRequestID, "req-"+tt.expectedCode)
			rr := httptest.NewRecorder()
			sw := newStatusWriter(rr, 1)
			handler.ServeHTTP(sw, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))
			assert.Equal(t, tt.expectedCode, sw.ErrorCode())

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.Equal(t, "req-"+tt.expectedCode, errorResponse.RequestID)
			assert.Equal(t, tt.expectedCategory, errorResponse.ErrorCategory)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
			assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
		})
	}
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(func(w http.ResponseWriter, r *http.Request) error {
		_, _ = w.Write([]byte("success"))
		return nil
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/2017.06.30", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}
