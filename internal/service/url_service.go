package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// URLService выдает короткие коды и сохраняет ссылки
type URLService struct {
	repo          CodeRepository
	codeGenerator Generator
	cfg           *config.Config
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo CodeRepository, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(cfg.CodeLength),
		cfg:           cfg,
	}
}

// CreateShortURL сохраняет ссылку под случайным кодом.
// Код проверяется на уникальность перед вставкой; если другой запрос успел занять
// его между проверкой и вставкой, попытка повторяется с новым кодом.
func (s *URLService) CreateShortURL(ctx context.Context, fullURL model.URL, userID string) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := s.codeGenerator.GenerateCode()
		if err != nil {
			return "", err
		}

		unique, err := s.repo.IsCodeUnique(ctx, code)
		if err != nil {
			return "", err
		}
		if !unique {
			continue
		}

		err = s.repo.CreateURL(ctx, &model.ShortURL{
			Code:    code,
			FullURL: fullURL,
			UserID:  userID,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return "", err
		}

		return code, nil
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

// CreateCustomShortURL сохраняет ссылку под кодом, выбранным пользователем
func (s *URLService) CreateCustomShortURL(ctx context.Context, fullURL model.URL, code model.Code, userID string) (model.Code, error) {
	unique, err := s.repo.IsCodeUnique(ctx, code)
	if err != nil {
		return "", err
	}
	if !unique {
		return "", fmt.Errorf("code %s: %w", code, ErrCodeTaken)
	}

	err = s.repo.CreateURL(ctx, &model.ShortURL{
		Code:    code,
		FullURL: fullURL,
		UserID:  userID,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return "", fmt.Errorf("code %s: %w", code, ErrCodeTaken)
	}
	if err != nil {
		return "", err
	}

	return code, nil
}
