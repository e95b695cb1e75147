package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/response"
	"go.uber.org/zap"
)

// UserIDKey is the key used to store user ID in context
type UserIDKey string

const (
	// UserIDContextKey is the context key for user ID
	UserIDContextKey UserIDKey = "user_id"
)

// Сообщения ответа 401
const (
	MsgNoToken      = "No token provided"
	MsgInvalidToken = "Invalid token"
)

// TokenValidator извлекает JWT из запроса и проверяет его
type TokenValidator interface {
	TokenFromRequest(r *http.Request) string
	ValidateJWT(token string) (string, error)
}

// AuthMiddleware представляет миддлвар для аутентификации пользователей по cookie с JWT
type AuthMiddleware struct {
	tokens TokenValidator
	logger *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth пропускает только запросы с действительным JWT
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := am.tokens.TokenFromRequest(r)
		if token == "" {
			_ = response.Error(w, apperror.Unauthorized(MsgNoToken))
			return
		}

		userID, err := am.tokens.ValidateJWT(token)
		if err != nil {
			am.logger.Debug("rejected token",
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
			_ = response.Error(w, apperror.Unauthorized(MsgInvalidToken))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// OptionalAuth добавляет user_id в контекст, если запрос содержит действительный JWT.
// Без токена или с недействительным токеном запрос продолжается анонимно.
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := am.tokens.TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := am.tokens.ValidateJWT(token)
		if err != nil {
			am.logger.Debug("ignoring invalid token",
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с идентификатором пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
