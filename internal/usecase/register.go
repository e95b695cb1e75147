package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// Register создает неподтвержденную учетную запись и отправляет письмо со ссылкой подтверждения.
// JWT возвращается только если подтверждение email не требуется для входа.
func (a *AuthUsecase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	check := a.checker.Check(ctx, email)
	if !check.Valid {
		a.logger.Info("registration rejected by email check",
			zap.String("email", email),
			zap.String("reason", check.Reason),
		)
		return nil, "", apperror.BadRequest(check.Reason)
	}
	if check.Warning != "" {
		a.logger.Warn("email accepted with warning",
			zap.String("email", email),
			zap.String("validation_type", check.ValidationType),
			zap.String("warning", check.Warning),
		)
	}

	_, err := a.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", apperror.Conflict(MsgUserExists)
	}
	if !errors.Is(err, store.ErrNotFound) {
		a.logger.Error("failed to look up user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to look up user", err)
	}

	passwordHash, err := a.hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	token, err := a.issueVerificationToken(user)
	if err != nil {
		return nil, "", err
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, "", apperror.Wrap(apperror.KindConflict, MsgUserExists, err)
		}
		a.logger.Error("failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to create user", err)
	}

	// Пользователь может запросить письмо повторно, поэтому ошибка отправки не прерывает регистрацию
	if err := a.mailer.SendVerificationEmail(ctx, user.Email, user.Name, token); err != nil {
		a.logger.Error("failed to send verification email",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	a.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("validation_type", check.ValidationType),
	)

	if a.cfg.Auth.RequireEmailVerification {
		return user, "", nil
	}
	return a.issueSession(user)
}
