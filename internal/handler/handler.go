package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/response"
	"github.com/avc-dev/shortlink/internal/validation"
	"go.uber.org/zap"
)

// URLUsecase определяет операции над короткими ссылками
type URLUsecase interface {
	CreateShortURL(ctx context.Context, rawURL, userID string) (string, error)
	CreateCustomShortURL(ctx context.Context, rawURL, customID, userID string) (string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetURLsByUserID(ctx context.Context, userID string) ([]model.UserURLResponse, error)
}

// AuthUsecase определяет операции с учетными записями.
// Методы, открывающие сессию, возвращают JWT; пустой токен означает, что вход не выполнен.
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	VerifyEmail(ctx context.Context, token string) (*model.User, string, error)
	ResendVerification(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, userID, name string) (*model.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*model.User, string, error)
}

// SessionManager записывает и удаляет cookie сессии
type SessionManager interface {
	SetAuthCookie(w http.ResponseWriter, token string)
	ClearAuthCookie(w http.ResponseWriter)
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы API
type Handler struct {
	urls      URLUsecase
	auth      AuthUsecase
	sessions  SessionManager
	storage   Pinger
	validator *validation.Validator
	cfg       *config.Config
	logger    *zap.Logger
}

// New создает новый экземпляр Handler
func New(
	urls URLUsecase,
	auth AuthUsecase,
	sessions SessionManager,
	storage Pinger,
	validator *validation.Validator,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		urls:      urls,
		auth:      auth,
		sessions:  sessions,
		storage:   storage,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// getUserIDFromRequest извлекает user_id, установленный auth middleware
func (h *Handler) getUserIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// decodeAndValidate читает JSON тело запроса в dst и проверяет его теги validate
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return apperror.Wrap(apperror.KindBadRequest, "Request body too large", err)
		case errors.Is(err, io.EOF):
			return apperror.Wrap(apperror.KindBadRequest, "Request body is required", err)
		default:
			return apperror.Wrap(apperror.KindBadRequest, "Invalid JSON", err)
		}
	}

	return h.validator.Struct(dst)
}

// handleError пишет ответ с ошибкой; внутренние ошибки дополнительно логируются
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
	} else {
		h.logger.Debug("request rejected",
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
	}

	if writeErr := response.Error(w, err); writeErr != nil {
		h.logger.Error("failed to encode response", zap.Error(writeErr))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := response.JSON(w, status, v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
