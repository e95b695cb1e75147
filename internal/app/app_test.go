package app

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestApp_Close(t *testing.T) {
	t.Run("storage exists", func(t *testing.T) {
		mockStorage := mocks.NewMockStorage(t)
		mockStorage.EXPECT().Close(mock.Anything).Return(nil).Once()

		app := &App{
			logger:  zap.NewNop(),
			storage: mockStorage,
		}

		// Act
		app.Close(context.Background())
	})

	t.Run("close error is logged", func(t *testing.T) {
		mockStorage := mocks.NewMockStorage(t)
		mockStorage.EXPECT().Close(mock.Anything).Return(assert.AnError).Once()

		app := &App{
			logger:  zap.NewNop(),
			storage: mockStorage,
		}

		// Act
		app.Close(context.Background())
	})

	t.Run("storage is nil", func(t *testing.T) {
		app := &App{
			logger:  zap.NewNop(),
			storage: nil,
		}

		// Act - should not panic
		app.Close(context.Background())
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		production bool
		wantErr    bool
	}{
		{name: "development info", level: "info"},
		{name: "production debug", level: "debug", production: true},
		{name: "unknown level", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cfg.LogLevel = tt.level
			cfg.Production = tt.production

			logger, err := newLogger(cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestServiceRegistration(t *testing.T) {
	reg := serviceRegistration("", 3000)

	assert.Equal(t, "shortlink-localhost:3000", reg.ID)
	assert.Equal(t, serviceName, reg.Name)
	assert.Equal(t, "localhost", reg.Address)
	assert.Equal(t, 3000, reg.Port)
	require.NotNil(t, reg.Check)
	assert.Equal(t, "http://localhost:3000/health", reg.Check.HTTP)
}

func TestServeGRPC_StopIsNotAnError(t *testing.T) {
	t.Run("stopped before serve", func(t *testing.T) {
		// Arrange
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		srv := newHealthServer()
		srv.GracefulStop()

		// Act
		err = serveGRPC(srv, lis)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("stopped while serving", func(t *testing.T) {
		// Arrange
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		srv := newHealthServer()
		errCh := make(chan error, 1)
		go func() { errCh <- serveGRPC(srv, lis) }()

		// Act
		srv.GracefulStop()

		// Assert
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("grpc server did not stop")
		}
	})
}

// newTestServer собирает приложение поверх хранилища в памяти
func newTestServer(t *testing.T, mutate func(cfg *config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Auth.RequireEmailVerification = false
	if mutate != nil {
		mutate(cfg)
	}

	logger := zaptest.NewLogger(t)
	deps, err := buildDependencies(cfg, logger, store.NewStore())
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(deps.handler, deps.auth, logger, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func doJSON(t *testing.T, client *http.Client, method, url, body string, cookies ...*http.Cookie) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func authCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == service.AuthCookieName {
			return c
		}
	}
	require.FailNow(t, "auth cookie not set")
	return nil
}

func TestRouter_AnonymousShortenAndRedirect(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.BaseURL = config.URLPrefix(srvURLPlaceholder)
	})
	client := noRedirectClient()

	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/create", `{"url":"https://example.com/page"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	shortURL, ok := body["url"].(string)
	require.True(t, ok)
	code := strings.TrimPrefix(shortURL, srvURLPlaceholder)
	assert.Len(t, code, 7)

	redirect, err := client.Get(srv.URL + "/" + code)
	require.NoError(t, err)
	defer redirect.Body.Close()
	assert.Equal(t, http.StatusFound, redirect.StatusCode)
	assert.Equal(t, "https://example.com/page", redirect.Header.Get("Location"))
}

const srvURLPlaceholder = "http://sho.rt/"

func TestRouter_UnknownCode(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, noRedirectClient(), http.MethodGet, srv.URL+"/missing1", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Invalid Short URL", body["message"])
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.DefaultClient, http.MethodGet, srv.URL+"/api/nothing/here", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", body["message"])
}

func TestRouter_SystemEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.DefaultClient, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])

	resp, _ = doJSON(t, http.DefaultClient, http.MethodGet, srv.URL+"/ping", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.DefaultClient, http.MethodGet, srv.URL+"/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestRouter_ProtectedRoutesRequireCookie(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/user/urls"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/create/custom"},
		{http.MethodPut, "/api/auth/profile"},
	} {
		resp, body := doJSON(t, http.DefaultClient, route.method, srv.URL+route.path, `{}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
		assert.Equal(t, "No token provided", body["message"], route.path)
	}
}

func TestRouter_CustomIDRequiresLogin(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, _ := doJSON(t, http.DefaultClient, http.MethodPost, srv.URL+"/api/create",
		`{"url":"https://example.com","customId":"promo"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AccountFlow(t *testing.T) {
	srv := newTestServer(t, nil)
	client := noRedirectClient()

	// Регистрация без обязательного подтверждения сразу открывает сессию
	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/register",
		`{"name":"Alice","email":"Alice@Example.com","password":"Str0ng!Pass"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "alice@example.com", body["user"].(map[string]any)["email"])
	cookie := authCookie(t, resp)

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"Str0ng!Pass"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/create",
		`{"url":"https://example.com/promo","customId":"promo"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, client, http.MethodPost, srv.URL+"/api/create/custom",
		`{"url":"https://example.com/other","customId":"PROMO"}`, cookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, body = doJSON(t, client, http.MethodPost, srv.URL+"/api/create/custom",
		`{"url":"https://example.com/again","customId":"promo"}`, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Custom ID already exists", body["message"])

	redirect, err := client.Get(srv.URL + "/promo")
	require.NoError(t, err)
	redirect.Body.Close()
	require.Equal(t, http.StatusFound, redirect.StatusCode)

	resp, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/user/urls", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	urls := body["urls"].([]any)
	require.Len(t, urls, 2)

	clicks := map[string]float64{}
	for _, u := range urls {
		entry := u.(map[string]any)
		clicks[entry["short_url"].(string)] = entry["clicks"].(float64)
	}
	assert.Equal(t, float64(1), clicks["promo"])
	assert.Equal(t, float64(0), clicks["PROMO"])

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Email or password is invalid", body["message"])

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		`{"email":"alice@example.com","password":"Str0ng!Pass"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie = authCookie(t, resp)

	resp, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice", body["user"].(map[string]any)["name"])
}

func gzipBody(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRouter_RequestBodyLimit(t *testing.T) {
	const bodyLimit = 512
	// Тело с длинным URL сжимается во много раз меньше лимита
	payload := `{"url":"https://example.com/` + strings.Repeat("a", 4<<10) + `"}`

	tests := []struct {
		name       string
		body       []byte
		compressed bool
	}{
		{name: "plain body", body: []byte(payload)},
		{name: "gzip body counted after decompression", body: gzipBody(t, payload), compressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			srv := newTestServer(t, func(cfg *config.Config) { cfg.BodyLimit = bodyLimit })
			if tt.compressed {
				require.Less(t, len(tt.body), bodyLimit)
			}

			req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/create", bytes.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tt.compressed {
				req.Header.Set("Content-Encoding", "gzip")
			}

			// Act
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			// Assert
			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Request body too large", body["message"])
		})
	}
}

func TestRouter_GzipBodyWithinLimit(t *testing.T) {
	// Arrange
	srv := newTestServer(t, nil)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/create",
		bytes.NewReader(gzipBody(t, `{"url":"https://example.com/page"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	// Act
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
