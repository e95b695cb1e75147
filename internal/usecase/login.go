package usecase

import (
	"context"
	"errors"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// Login проверяет учетные данные и выпускает JWT
func (a *AuthUsecase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := a.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", apperror.Wrap(apperror.KindUnauthorized, MsgInvalidCredentials, err)
	}
	if err != nil {
		a.logger.Error("failed to look up user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}

	ok, err := a.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		a.logger.Error("failed to compare password",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to verify password", err)
	}
	if !ok {
		return nil, "", apperror.Unauthorized(MsgInvalidCredentials)
	}

	if a.cfg.Auth.RequireEmailVerification && !user.IsEmailVerified {
		return nil, "", apperror.Unauthorized(MsgEmailNotVerified)
	}

	return a.issueSession(user)
}

// Me возвращает пользователя текущей сессии
func (a *AuthUsecase) Me(ctx context.Context, userID string) (*model.User, error) {
	return a.currentUser(ctx, userID)
}
