package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// URLRepository определяет интерфейс для чтения ссылок из хранилища
type URLRepository interface {
	IncrementClicks(ctx context.Context, code model.Code) (*model.ShortURL, error)
	GetURLsByUserID(ctx context.Context, userID string) ([]model.ShortURL, error)
}

// URLService определяет интерфейс для работы с сервисом генерации коротких URL
type URLService interface {
	CreateShortURL(ctx context.Context, fullURL model.URL, userID string) (model.Code, error)
	CreateCustomShortURL(ctx context.Context, fullURL model.URL, code model.Code, userID string) (model.Code, error)
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo    URLRepository
	service URLService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, service URLService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}
