package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateURL(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		userID         string
		setup          func(d testDeps)
		expectedStatus int
		expectedURL    string
		expectedMsg    string
	}{
		{
			name: "anonymous random code",
			body: CreateURLRequest{URL: "https://example.com"},
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateShortURL(mock.Anything, "https://example.com", "").
					Return("http://localhost:3000/aB3xY_9", nil).
					Once()
			},
			expectedStatus: http.StatusCreated,
			expectedURL:    "http://localhost:3000/aB3xY_9",
		},
		{
			name:   "authenticated random code keeps owner",
			body:   CreateURLRequest{URL: "https://example.com"},
			userID: "user-1",
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateShortURL(mock.Anything, "https://example.com", "user-1").
					Return("http://localhost:3000/aB3xY_9", nil).
					Once()
			},
			expectedStatus: http.StatusCreated,
			expectedURL:    "http://localhost:3000/aB3xY_9",
		},
		{
			name:   "custom id routes to custom creation",
			body:   CreateURLRequest{URL: "https://example.com", CustomID: "my-link"},
			userID: "user-1",
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateCustomShortURL(mock.Anything, "https://example.com", "my-link", "user-1").
					Return("http://localhost:3000/my-link", nil).
					Once()
			},
			expectedStatus: http.StatusCreated,
			expectedURL:    "http://localhost:3000/my-link",
		},
		{
			name: "custom id without login",
			body: CreateURLRequest{URL: "https://example.com", CustomID: "my-link"},
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateCustomShortURL(mock.Anything, "https://example.com", "my-link", "").
					Return("", apperror.Unauthorized(usecase.MsgCustomIDLogin)).
					Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    usecase.MsgCustomIDLogin,
		},
		{
			name:   "custom id taken",
			body:   CreateURLRequest{URL: "https://example.com", CustomID: "taken"},
			userID: "user-1",
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateCustomShortURL(mock.Anything, "https://example.com", "taken", "user-1").
					Return("", apperror.Conflict(usecase.MsgCustomIDExists)).
					Once()
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    usecase.MsgCustomIDExists,
		},
		{
			name: "invalid url from usecase",
			body: CreateURLRequest{URL: "not a url"},
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateShortURL(mock.Anything, "not a url", "").
					Return("", apperror.BadRequest(usecase.MsgInvalidURL)).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    usecase.MsgInvalidURL,
		},
		{
			name: "internal error is hidden",
			body: CreateURLRequest{URL: "https://example.com"},
			setup: func(d testDeps) {
				d.urls.EXPECT().
					CreateShortURL(mock.Anything, "https://example.com", "").
					Return("", assert.AnError).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    apperror.InternalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, deps := newTestHandler(t)
			tt.setup(deps)

			req := jsonRequest(t, http.MethodPost, "/api/create", tt.body)
			if tt.userID != "" {
				req = withUser(req, tt.userID)
			}
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			body := decodeBody(t, w)
			if tt.expectedURL != "" {
				assert.Equal(t, tt.expectedURL, body["url"])
				return
			}
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.expectedMsg, body["message"])
		})
	}
}

func TestCreateURL_MalformedBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedMsg string
	}{
		{name: "empty body", body: "", expectedMsg: "Request body is required"},
		{name: "invalid json", body: "{url:", expectedMsg: "Invalid JSON"},
		{name: "wrong type", body: `{"url":42}`, expectedMsg: "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/create", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
		})
	}
}

func TestCreateURL_BodyTooLarge(t *testing.T) {
	// Arrange
	h, _ := newTestHandler(t)
	payload := `{"url":"https://example.com/` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/create", strings.NewReader(payload))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 16)

	// Act
	h.CreateURL(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body too large", decodeBody(t, w)["message"])
}

func TestCreateCustomURL(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.urls.EXPECT().
		CreateCustomShortURL(mock.Anything, "https://example.com", "promo", "user-1").
		Return("http://localhost:3000/promo", nil).
		Once()

	req := withUser(jsonRequest(t, http.MethodPost, "/api/create/custom",
		CreateURLRequest{URL: "https://example.com", CustomID: "promo"}), "user-1")
	w := httptest.NewRecorder()

	// Act
	h.CreateCustomURL(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://localhost:3000/promo", decodeBody(t, w)["url"])
}

func TestCreateCustomURL_MissingCustomID(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.urls.EXPECT().
		CreateCustomShortURL(mock.Anything, "https://example.com", "", "user-1").
		Return("", apperror.BadRequest(usecase.MsgCustomIDRequired)).
		Once()

	req := withUser(jsonRequest(t, http.MethodPost, "/api/create/custom",
		CreateURLRequest{URL: "https://example.com"}), "user-1")
	w := httptest.NewRecorder()

	// Act
	h.CreateCustomURL(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, usecase.MsgCustomIDRequired, decodeBody(t, w)["message"])
}
