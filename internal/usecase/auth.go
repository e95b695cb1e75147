package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/emailcheck"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// UserRepository определяет интерфейс хранилища пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByVerificationToken(ctx context.Context, tokenHash string) (*model.User, error)
	GetUserByResetToken(ctx context.Context, tokenHash string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
}

// PasswordHasher хеширует и проверяет пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// TokenIssuer выпускает JWT для сессии
type TokenIssuer interface {
	GenerateJWT(userID string) (string, error)
}

// EmailSender отправляет служебные письма
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPasswordResetEmail(ctx context.Context, to, name, token string) error
}

// EmailChecker оценивает доставляемость адреса
type EmailChecker interface {
	Check(ctx context.Context, email string) emailcheck.Result
}

// AuthUsecase содержит бизнес-логику учетных записей
type AuthUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  TokenIssuer
	mailer  EmailSender
	checker EmailChecker
	cfg     *config.Config
	logger  *zap.Logger

	now      func() time.Time
	newToken func() (token, hash string, err error)
}

// NewAuthUsecase создает новый экземпляр AuthUsecase
func NewAuthUsecase(
	users UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	mailer EmailSender,
	checker EmailChecker,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		checker:  checker,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		newToken: service.NewOpaqueToken,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// issueSession выпускает JWT для пользователя
func (a *AuthUsecase) issueSession(user *model.User) (*model.User, string, error) {
	token, err := a.tokens.GenerateJWT(user.ID)
	if err != nil {
		a.logger.Error("failed to generate JWT",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to generate token", err)
	}
	return user, token, nil
}

// currentUser загружает пользователя сессии; отсутствующий пользователь означает недействительную сессию
func (a *AuthUsecase) currentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.Wrap(apperror.KindUnauthorized, MsgUserNotFound, err)
	}
	if err != nil {
		a.logger.Error("failed to get user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, apperror.Wrap(apperror.KindInternal, "failed to get user", err)
	}
	return user, nil
}

func (a *AuthUsecase) updateUser(ctx context.Context, user *model.User, action string) error {
	user.UpdatedAt = a.now()
	if err := a.users.UpdateUser(ctx, user); err != nil {
		a.logger.Error("failed to update user",
			zap.String("user_id", user.ID),
			zap.String("action", action),
			zap.Error(err),
		)
		return apperror.Wrap(apperror.KindInternal, "failed to update user", err)
	}
	return nil
}

func (a *AuthUsecase) hashPassword(password string) (string, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("failed to hash password", zap.Error(err))
		return "", apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}
	return hash, nil
}

// issueVerificationToken сохраняет в user хеш нового токена подтверждения и возвращает сам токен
func (a *AuthUsecase) issueVerificationToken(user *model.User) (string, error) {
	token, hash, err := a.newToken()
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to generate verification token", err)
	}
	expires := a.now().Add(a.cfg.Auth.VerificationTokenTTL)
	user.EmailVerificationTokenHash = hash
	user.EmailVerificationExpires = &expires
	return token, nil
}
