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

// VerifyEmail подтверждает адрес по токену из письма и сразу открывает сессию
func (a *AuthUsecase) VerifyEmail(ctx context.Context, token string) (*model.User, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, "", apperror.BadRequest(MsgInvalidVerifyToken)
	}

	user, err := a.users.GetUserByVerificationToken(ctx, service.HashToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", apperror.Wrap(apperror.KindBadRequest, MsgInvalidVerifyToken, err)
	}
	if err != nil {
		a.logger.Error("failed to look up verification token", zap.Error(err))
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to look up verification token", err)
	}

	if !user.VerificationTokenValid(a.now()) {
		return nil, "", apperror.BadRequest(MsgInvalidVerifyToken)
	}

	user.IsEmailVerified = true
	user.ClearVerificationToken()
	if err := a.updateUser(ctx, user, "verify_email"); err != nil {
		return nil, "", err
	}

	if err := a.mailer.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		a.logger.Warn("failed to send welcome email",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	a.logger.Info("email verified", zap.String("user_id", user.ID))
	return a.issueSession(user)
}

// ResendVerification выпускает новый токен подтверждения и отправляет письмо повторно
func (a *AuthUsecase) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := a.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.Wrap(apperror.KindNotFound, MsgUserNotFound, err)
	}
	if err != nil {
		a.logger.Error("failed to look up user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}

	if user.IsEmailVerified {
		return apperror.BadRequest(MsgAlreadyVerified)
	}

	token, err := a.issueVerificationToken(user)
	if err != nil {
		return err
	}
	if err := a.updateUser(ctx, user, "resend_verification"); err != nil {
		return err
	}

	if err := a.mailer.SendVerificationEmail(ctx, user.Email, user.Name, token); err != nil {
		a.logger.Error("failed to send verification email",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, MsgEmailSendFailed, err)
	}

	return nil
}
