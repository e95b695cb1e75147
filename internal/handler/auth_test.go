package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.User{
		ID:              "user-1",
		Name:            "Alice",
		Email:           "alice@example.com",
		PasswordHash:    "$2a$10$secret",
		IsEmailVerified: true,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		expectedMsg  string
		expectCookie bool
	}{
		{
			name:         "verification required",
			expectedMsg:  msgRegisterVerify,
			expectCookie: false,
		},
		{
			name:         "verification disabled logs in",
			token:        "jwt-token",
			expectedMsg:  msgRegisterLoggedIn,
			expectCookie: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, deps := newTestHandler(t)
			user := testUser()
			user.IsEmailVerified = false
			deps.auth.EXPECT().
				Register(mock.Anything, "Alice", "alice@example.com", "Str0ng!Pass").
				Return(user, tt.token, nil).
				Once()

			req := jsonRequest(t, http.MethodPost, "/api/auth/register", RegisterRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "Str0ng!Pass",
			})
			w := httptest.NewRecorder()

			// Act
			h.Register(w, req)

			// Assert
			require.Equal(t, http.StatusCreated, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, true, body["success"])
			assert.Equal(t, tt.expectedMsg, body["message"])

			userBody := body["user"].(map[string]any)
			assert.Equal(t, "alice@example.com", userBody["email"])
			assert.Equal(t, false, userBody["isEmailVerified"])
			assert.NotContains(t, userBody, "passwordHash")

			cookie := findCookie(w, service.AuthCookieName)
			if !tt.expectCookie {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, tt.token, cookie.Value)
			assert.True(t, cookie.HttpOnly)
		})
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{name: "short name", req: RegisterRequest{Name: "A", Email: "alice@example.com", Password: "Str0ng!Pass"}},
		{name: "bad email", req: RegisterRequest{Name: "Alice", Email: "alice", Password: "Str0ng!Pass"}},
		{name: "weak password", req: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password"}},
		{name: "short password", req: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "S1!a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, _ := newTestHandler(t)
			w := httptest.NewRecorder()

			// Act
			h.Register(w, jsonRequest(t, http.MethodPost, "/api/auth/register", tt.req))

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestRegister_UserExists(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		Register(mock.Anything, "Alice", "alice@example.com", "Str0ng!Pass").
		Return(nil, "", apperror.Conflict(usecase.MsgUserExists)).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.Register(w, jsonRequest(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Str0ng!Pass",
	}))

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, usecase.MsgUserExists, decodeBody(t, w)["message"])
}

func TestLogin(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		Login(mock.Anything, "alice@example.com", "Str0ng!Pass").
		Return(testUser(), "jwt-token", nil).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.Login(w, jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    "alice@example.com",
		Password: "Str0ng!Pass",
	}))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgLogin, decodeBody(t, w)["message"])

	cookie := findCookie(w, service.AuthCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "jwt-token", cookie.Value)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "invalid credentials",
			err:         apperror.Unauthorized(usecase.MsgInvalidCredentials),
			expectedMsg: usecase.MsgInvalidCredentials,
		},
		{
			name:        "email not verified",
			err:         apperror.Unauthorized(usecase.MsgEmailNotVerified),
			expectedMsg: usecase.MsgEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().
				Login(mock.Anything, "alice@example.com", "whatever").
				Return(nil, "", tt.err).
				Once()
			w := httptest.NewRecorder()

			// Act
			h.Login(w, jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
				Email:    "alice@example.com",
				Password: "whatever",
			}))

			// Assert
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
			assert.Nil(t, findCookie(w, service.AuthCookieName))
		})
	}
}

func TestLogout(t *testing.T) {
	// Arrange
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	// Act
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"logout success"}`, w.Body.String())

	cookie := findCookie(w, service.AuthCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestMe(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().Me(mock.Anything, "user-1").Return(testUser(), nil).Once()
	w := httptest.NewRecorder()

	// Act
	h.Me(w, withUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "user-1"))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "user-1", body["user"].(map[string]any)["id"])
}

func TestMe_UserDeleted(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		Me(mock.Anything, "user-1").
		Return(nil, apperror.Unauthorized(usecase.MsgUserNotFound)).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.Me(w, withUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "user-1"))

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, usecase.MsgUserNotFound, decodeBody(t, w)["message"])
}

func TestMe_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	h.Me(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyEmail(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		VerifyEmail(mock.Anything, "plain-token").
		Return(testUser(), "jwt-token", nil).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.VerifyEmail(w, jsonRequest(t, http.MethodPost, "/api/auth/verify-email", TokenRequest{Token: "plain-token"}))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgEmailVerified, decodeBody(t, w)["message"])
	require.NotNil(t, findCookie(w, service.AuthCookieName))
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		VerifyEmail(mock.Anything, "stale").
		Return(nil, "", apperror.BadRequest(usecase.MsgInvalidVerifyToken)).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.VerifyEmail(w, jsonRequest(t, http.MethodPost, "/api/auth/verify-email", TokenRequest{Token: "stale"}))

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, usecase.MsgInvalidVerifyToken, decodeBody(t, w)["message"])
}

func TestVerifyEmail_MissingToken(t *testing.T) {
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	h.VerifyEmail(w, jsonRequest(t, http.MethodPost, "/api/auth/verify-email", TokenRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendVerification(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "sent",
			expectedStatus: http.StatusOK,
			expectedMsg:    msgVerificationSent,
		},
		{
			name:           "unknown user",
			err:            apperror.NotFound(usecase.MsgUserNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    usecase.MsgUserNotFound,
		},
		{
			name:           "already verified",
			err:            apperror.BadRequest(usecase.MsgAlreadyVerified),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    usecase.MsgAlreadyVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().
				ResendVerification(mock.Anything, "alice@example.com").
				Return(tt.err).
				Once()
			w := httptest.NewRecorder()

			// Act
			h.ResendVerification(w, jsonRequest(t, http.MethodPost, "/api/auth/resend-verification",
				EmailRequest{Email: "alice@example.com"}))

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	updated := testUser()
	updated.Name = "Alice Cooper"
	deps.auth.EXPECT().
		UpdateProfile(mock.Anything, "user-1", "Alice Cooper").
		Return(updated, nil).
		Once()
	req := withUser(jsonRequest(t, http.MethodPut, "/api/auth/profile",
		UpdateProfileRequest{Name: "Alice Cooper"}), "user-1")
	w := httptest.NewRecorder()

	// Act
	h.UpdateProfile(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, msgProfileUpdated, body["message"])
	assert.Equal(t, "Alice Cooper", body["user"].(map[string]any)["name"])
}

func TestUpdateProfile_InvalidName(t *testing.T) {
	h, _ := newTestHandler(t)
	req := withUser(jsonRequest(t, http.MethodPut, "/api/auth/profile", UpdateProfileRequest{Name: "A"}), "user-1")
	w := httptest.NewRecorder()

	h.UpdateProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "changed",
			expectedStatus: http.StatusOK,
			expectedMsg:    msgPasswordChanged,
		},
		{
			name:           "wrong current password",
			err:            apperror.BadRequest(usecase.MsgWrongPassword),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    usecase.MsgWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().
				ChangePassword(mock.Anything, "user-1", "Old1!pass", "N3w!passw").
				Return(tt.err).
				Once()
			req := withUser(jsonRequest(t, http.MethodPost, "/api/auth/change-password", ChangePasswordRequest{
				CurrentPassword: "Old1!pass",
				NewPassword:     "N3w!passw",
			}), "user-1")
			w := httptest.NewRecorder()

			// Act
			h.ChangePassword(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
		})
	}
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	h.ChangePassword(w, jsonRequest(t, http.MethodPost, "/api/auth/change-password", ChangePasswordRequest{
		CurrentPassword: "Old1!pass",
		NewPassword:     "N3w!passw",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgotPassword(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().ForgotPassword(mock.Anything, "nobody@example.com").Return(nil).Once()
	w := httptest.NewRecorder()

	// Act
	h.ForgotPassword(w, jsonRequest(t, http.MethodPost, "/api/auth/forgot-password",
		EmailRequest{Email: "nobody@example.com"}))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgResetSent, decodeBody(t, w)["message"])
}

func TestForgotPassword_SendFailure(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		ForgotPassword(mock.Anything, "alice@example.com").
		Return(apperror.Wrap(apperror.KindInternal, usecase.MsgEmailSendFailed, assert.AnError)).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.ForgotPassword(w, jsonRequest(t, http.MethodPost, "/api/auth/forgot-password",
		EmailRequest{Email: "alice@example.com"}))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.InternalMessage, decodeBody(t, w)["message"])
}

func TestResetPassword(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		ResetPassword(mock.Anything, "reset-token", "N3w!passw").
		Return(testUser(), "jwt-token", nil).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.ResetPassword(w, jsonRequest(t, http.MethodPost, "/api/auth/reset-password", ResetPasswordRequest{
		Token:    "reset-token",
		Password: "N3w!passw",
	}))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgPasswordReset, decodeBody(t, w)["message"])
	cookie := findCookie(w, service.AuthCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "jwt-token", cookie.Value)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	// Arrange
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().
		ResetPassword(mock.Anything, "stale", "N3w!passw").
		Return(nil, "", apperror.BadRequest(usecase.MsgInvalidResetToken)).
		Once()
	w := httptest.NewRecorder()

	// Act
	h.ResetPassword(w, jsonRequest(t, http.MethodPost, "/api/auth/reset-password", ResetPasswordRequest{
		Token:    "stale",
		Password: "N3w!passw",
	}))

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, usecase.MsgInvalidResetToken, decodeBody(t, w)["message"])
	assert.Nil(t, findCookie(w, service.AuthCookieName))
}
