package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r *Repository) CreateURL(ctx context.Context, record *model.ShortURL) error {
	if err := r.underlying.CreateURL(ctx, record); err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	return nil
}
