package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetURLsByUserID_Success(t *testing.T) {
	// Arrange
	usecase, mockRepo, _ := newTestURLUsecase(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		GetURLsByUserID(ctx, "user-1").
		Return([]model.ShortURL{
			{ID: "2", Code: "newer01", FullURL: "https://example.com/b", Clicks: 3, UserID: "user-1", CreatedAt: createdAt.Add(time.Hour)},
			{ID: "1", Code: "older01", FullURL: "https://example.com/a", Clicks: 0, UserID: "user-1", CreatedAt: createdAt},
		}, nil).
		Once()

	// Act
	result, err := usecase.GetURLsByUserID(ctx, "user-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, model.UserURLResponse{
		ID:        "2",
		ShortURL:  "newer01",
		FullURL:   "https://example.com/b",
		Clicks:    3,
		URL:       "http://localhost:3000/newer01",
		CreatedAt: createdAt.Add(time.Hour),
	}, result[0])
	assert.Equal(t, "older01", result[1].ShortURL)
}

func TestGetURLsByUserID_Empty(t *testing.T) {
	// Arrange
	usecase, mockRepo, _ := newTestURLUsecase(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetURLsByUserID(ctx, "user-1").Return(nil, nil).Once()

	// Act
	result, err := usecase.GetURLsByUserID(ctx, "user-1")

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetURLsByUserID_StorageError(t *testing.T) {
	// Arrange
	usecase, mockRepo, _ := newTestURLUsecase(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetURLsByUserID(ctx, "user-1").Return(nil, errors.New("timeout")).Once()

	// Act
	result, err := usecase.GetURLsByUserID(ctx, "user-1")

	// Assert
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Nil(t, result)
}
