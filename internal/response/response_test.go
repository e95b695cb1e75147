package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   ErrorBody
	}{
		{
			name:           "typed error",
			err:            apperror.NotFound("Route not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrorBody{Success: false, Message: "Route not found"},
		},
		{
			name:           "unknown error",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrorBody{Success: false, Message: apperror.InternalMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			require.NoError(t, Error(w, tt.err))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, Message(w, http.StatusOK, "logout success"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"logout success"}`, w.Body.String())
}
