package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r *Repository) GetURLByCode(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	record, err := r.underlying.GetURLByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL by code: %w", err)
	}
	return record, nil
}

// IncrementClicks регистрирует переход по ссылке и возвращает обновленную запись
func (r *Repository) IncrementClicks(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	record, err := r.underlying.IncrementClicks(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to increment clicks: %w", err)
	}
	return record, nil
}

func (r *Repository) GetURLsByUserID(ctx context.Context, userID string) ([]model.ShortURL, error) {
	urls, err := r.underlying.GetURLsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs by user ID: %w", err)
	}
	return urls, nil
}
