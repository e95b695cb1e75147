package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// UpdateProfile меняет имя пользователя
func (a *AuthUsecase) UpdateProfile(ctx context.Context, userID, name string) (*model.User, error) {
	user, err := a.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(name)
	if err := a.updateUser(ctx, user, "update_profile"); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword меняет пароль после проверки текущего
func (a *AuthUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := a.currentUser(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := a.hasher.Compare(user.PasswordHash, currentPassword)
	if err != nil {
		a.logger.Error("failed to compare password",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, "failed to verify password", err)
	}
	if !ok {
		return apperror.BadRequest(MsgWrongPassword)
	}
	if currentPassword == newPassword {
		return apperror.BadRequest(MsgSamePassword)
	}

	user.PasswordHash, err = a.hashPassword(newPassword)
	if err != nil {
		return err
	}
	return a.updateUser(ctx, user, "change_password")
}

// ForgotPassword отправляет ссылку сброса пароля.
// Для неизвестного адреса ответ такой же, как для известного.
func (a *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := a.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		a.logger.Info("password reset requested for unknown email", zap.String("email", email))
		return nil
	}
	if err != nil {
		a.logger.Error("failed to look up user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}

	token, hash, err := a.newToken()
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to generate reset token", err)
	}
	expires := a.now().Add(a.cfg.Auth.ResetTokenTTL)
	user.PasswordResetTokenHash = hash
	user.PasswordResetExpires = &expires

	if err := a.updateUser(ctx, user, "forgot_password"); err != nil {
		return err
	}

	if err := a.mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, token); err != nil {
		a.logger.Error("failed to send password reset email",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, MsgEmailSendFailed, err)
	}

	return nil
}

// ResetPassword устанавливает новый пароль по токену из письма и открывает сессию.
// Переход по ссылке из письма подтверждает владение адресом.
func (a *AuthUsecase) ResetPassword(ctx context.Context, token, password string) (*model.User, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, "", apperror.BadRequest(MsgInvalidResetToken)
	}

	user, err := a.users.GetUserByResetToken(ctx, service.HashToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", apperror.Wrap(apperror.KindBadRequest, MsgInvalidResetToken, err)
	}
	if err != nil {
		a.logger.Error("failed to look up reset token", zap.Error(err))
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to look up reset token", err)
	}

	if !user.ResetTokenValid(a.now()) {
		return nil, "", apperror.BadRequest(MsgInvalidResetToken)
	}

	user.PasswordHash, err = a.hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.ClearResetToken()
	user.IsEmailVerified = true
	user.ClearVerificationToken()

	if err := a.updateUser(ctx, user, "reset_password"); err != nil {
		return nil, "", err
	}

	a.logger.Info("password reset", zap.String("user_id", user.ID))
	return a.issueSession(user)
}
