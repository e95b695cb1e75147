package usecase

import (
	"context"
	"errors"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// GetOriginalURL засчитывает переход по короткому коду и возвращает оригинальный URL
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	record, err := u.repo.IncrementClicks(ctx, model.Code(code))
	if errors.Is(err, store.ErrNotFound) {
		return "", apperror.Wrap(apperror.KindNotFound, MsgInvalidShortURL, err)
	}
	if err != nil {
		u.logger.Error("failed to get URL by code",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", apperror.Wrap(apperror.KindInternal, "failed to get URL by code", err)
	}

	return record.FullURL.String(), nil
}
