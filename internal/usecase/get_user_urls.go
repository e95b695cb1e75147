package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// GetURLsByUserID возвращает все URL для указанного пользователя, новые первыми
func (u *URLUsecase) GetURLsByUserID(ctx context.Context, userID string) ([]model.UserURLResponse, error) {
	records, err := u.repo.GetURLsByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("failed to get URLs by user ID",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, apperror.Wrap(apperror.KindInternal, "failed to get user URLs", err)
	}

	result := make([]model.UserURLResponse, 0, len(records))
	for _, record := range records {
		shortURL, err := u.buildShortURL(record.Code)
		if err != nil {
			return nil, err
		}

		result = append(result, model.UserURLResponse{
			ID:        record.ID,
			ShortURL:  record.Code.String(),
			FullURL:   record.FullURL.String(),
			Clicks:    record.Clicks,
			URL:       shortURL,
			CreatedAt: record.CreatedAt,
		})
	}

	u.logger.Debug("user URLs loaded",
		zap.String("user_id", userID),
		zap.Int("urls_count", len(result)),
	)
	return result, nil
}
