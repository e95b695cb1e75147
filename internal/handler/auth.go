package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/response"
	"go.uber.org/zap"
)

const (
	msgRegisterVerify   = "Registration successful. Please check your email to verify your account."
	msgRegisterLoggedIn = "Register and Login Success"
	msgLogin            = "Login Success"
	msgLogout           = "logout success"
	msgEmailVerified    = "Email verified successfully"
	msgVerificationSent = "Verification email sent"
	msgProfileUpdated   = "Profile updated successfully"
	msgPasswordChanged  = "Password changed successfully"
	msgResetSent        = "If an account with that email exists, a password reset link has been sent"
	msgPasswordReset    = "Password reset successfully"
)

// startSession выставляет cookie сессии, если usecase выдал токен
func (h *Handler) startSession(w http.ResponseWriter, token string) {
	if token != "" {
		h.sessions.SetAuthCookie(w, token)
	}
}

func (h *Handler) writeUser(w http.ResponseWriter, status int, message string, user *model.User) {
	h.writeJSON(w, status, UserResponse{
		Success: true,
		Message: message,
		User:    user.Public(),
	})
}

func (h *Handler) writeMessage(w http.ResponseWriter, message string) {
	if err := response.Message(w, http.StatusOK, message); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// requireUserID возвращает user_id аутентифицированного запроса
func (h *Handler) requireUserID(r *http.Request) (string, error) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		return "", apperror.Unauthorized("No token provided")
	}
	return userID, nil
}

// Register регистрирует пользователя.
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "User already exists"
// @Router /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	message := msgRegisterVerify
	if token != "" {
		h.startSession(w, token)
		message = msgRegisterLoggedIn
	}

	h.writeUser(w, http.StatusCreated, message, user)
}

// Login выполняет вход.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Failure 401 {object} response.ErrorBody "Email or password is invalid"
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.startSession(w, token)
	h.writeUser(w, http.StatusOK, msgLogin, user)
}

// Logout удаляет cookie сессии
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageBody
// @Router /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearAuthCookie(w)
	h.writeMessage(w, msgLogout)
}

// Me возвращает текущего пользователя
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := h.requireUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.auth.Me(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, UserResponse{Success: true, User: user.Public()})
}

// VerifyEmail подтверждает email и открывает сессию.
// @Summary Verify email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Verification token"
// @Success 200 {object} UserResponse
// @Failure 400 {object} response.ErrorBody "Invalid or expired verification token"
// @Router /api/auth/verify-email [post]
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.auth.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.startSession(w, token)
	h.writeUser(w, http.StatusOK, msgEmailVerified, user)
}

// ResendVerification отправляет новое письмо подтверждения
// @Summary Resend the verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody "Email is already verified"
// @Failure 404 {object} response.ErrorBody "User not found"
// @Router /api/auth/resend-verification [post]
func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.auth.ResendVerification(r.Context(), req.Email); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeMessage(w, msgVerificationSent)
}

// UpdateProfile меняет имя пользователя
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} UserResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.requireUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateProfileRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), userID, req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeUser(w, http.StatusOK, msgProfileUpdated, user)
}

// ChangePassword меняет пароль после проверки текущего
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody "Current password is incorrect"
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/change-password [post]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := h.requireUserID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ChangePasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeMessage(w, msgPasswordChanged)
}

// ForgotPassword отправляет ссылку сброса пароля. Ответ одинаков для известных и неизвестных адресов.
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} response.MessageBody
// @Router /api/auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeMessage(w, msgResetSent)
}

// ResetPassword устанавливает новый пароль по токену из письма и открывает сессию
// @Summary Reset password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} UserResponse
// @Failure 400 {object} response.ErrorBody "Invalid or expired reset token"
// @Router /api/auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.auth.ResetPassword(r.Context(), req.Token, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.startSession(w, token)
	h.writeUser(w, http.StatusOK, msgPasswordReset, user)
}
