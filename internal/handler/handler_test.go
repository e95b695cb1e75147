package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDeps struct {
	urls     *mocks.MockURLUsecase
	auth     *mocks.MockAuthUsecase
	storage  *mocks.MockStorage
	sessions *service.AuthService
	cfg      *config.Config
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	deps := testDeps{
		urls:     mocks.NewMockURLUsecase(t),
		auth:     mocks.NewMockAuthUsecase(t),
		storage:  mocks.NewMockStorage(t),
		sessions: service.NewAuthService("test-secret", 5*time.Minute, false),
		cfg:      config.NewDefaultConfig(),
	}

	h := New(deps.urls, deps.auth, deps.sessions, deps.storage, v, deps.cfg, zap.NewNop())
	return h, deps
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
