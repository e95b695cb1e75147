package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// IsCodeUnique проверяет, свободен ли код.
// Возвращает ошибку только в случае проблем с хранилищем (не "not found").
func (r *Repository) IsCodeUnique(ctx context.Context, code model.Code) (bool, error) {
	_, err := r.underlying.GetURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return false, nil
}
