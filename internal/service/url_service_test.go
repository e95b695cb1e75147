package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*URLService, *mocks.MockCodeRepository, *mocks.MockGenerator) {
	t.Helper()

	mockRepo := mocks.NewMockCodeRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = 3

	service := NewURLService(mockRepo, cfg)
	// Заменяем генератор на mock для теста
	service.codeGenerator = mockGenerator

	return service, mockRepo, mockGenerator
}

func recordWith(code model.Code, url model.URL, userID string) interface{} {
	return mock.MatchedBy(func(r *model.ShortURL) bool {
		return r.Code == code && r.FullURL == url && r.UserID == userID
	})
}

// TestCreateShortURL_Success проверяет успешное создание короткого URL с первой попытки
func TestCreateShortURL_Success(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t)
	ctx := context.Background()

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("abc1234"), nil).Once()
	mockRepo.EXPECT().IsCodeUnique(ctx, model.Code("abc1234")).Return(true, nil).Once()
	mockRepo.EXPECT().
		CreateURL(ctx, recordWith("abc1234", "https://example.com", "user-1")).
		Return(nil).
		Once()

	// Act
	code, err := service.CreateShortURL(ctx, "https://example.com", "user-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("abc1234"), code)
}

// TestCreateShortURL_ProbeCollision проверяет повтор генерации, если код уже занят
func TestCreateShortURL_ProbeCollision(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t)
	ctx := context.Background()

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("taken01"), nil).Once()
	mockGenerator.EXPECT().GenerateCode().Return(model.Code("fresh01"), nil).Once()
	mockRepo.EXPECT().IsCodeUnique(ctx, model.Code("taken01")).Return(false, nil).Once()
	mockRepo.EXPECT().IsCodeUnique(ctx, model.Code("fresh01")).Return(true, nil).Once()
	mockRepo.EXPECT().
		CreateURL(ctx, recordWith("fresh01", "https://example.com", "")).
		Return(nil).
		Once()

	// Act
	code, err := service.CreateShortURL(ctx, "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("fresh01"), code)
}

// TestCreateShortURL_InsertRace проверяет повтор, если код заняли между проверкой и вставкой
func TestCreateShortURL_InsertRace(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t)
	ctx := context.Background()

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("race001"), nil).Once()
	mockGenerator.EXPECT().GenerateCode().Return(model.Code("race002"), nil).Once()
	mockRepo.EXPECT().IsCodeUnique(ctx, mock.Anything).Return(true, nil).Twice()
	mockRepo.EXPECT().
		CreateURL(ctx, recordWith("race001", "https://example.com", "")).
		Return(fmt.Errorf("failed to create URL: %w", store.ErrAlreadyExists)).
		Once()
	mockRepo.EXPECT().
		CreateURL(ctx, recordWith("race002", "https://example.com", "")).
		Return(nil).
		Once()

	// Act
	code, err := service.CreateShortURL(ctx, "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("race002"), code)
}

// TestCreateShortURL_MaxRetriesExceeded проверяет ошибку после исчерпания попыток
func TestCreateShortURL_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	service, mockRepo, mockGenerator := newTestService(t)
	ctx := context.Background()

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("always1"), nil).Times(3)
	mockRepo.EXPECT().IsCodeUnique(ctx, model.Code("always1")).Return(false, nil).Times(3)

	// Act
	code, err := service.CreateShortURL(ctx, "https://example.com", "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Empty(t, code)
}

// TestCreateShortURL_StorageErrors проверяет, что ошибки хранилища не приводят к повтору
func TestCreateShortURL_StorageErrors(t *testing.T) {
	storageErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(ctx context.Context, repo *mocks.MockCodeRepository, gen *mocks.MockGenerator)
	}{
		{
			name: "generator error",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository, gen *mocks.MockGenerator) {
				gen.EXPECT().GenerateCode().Return(model.Code(""), storageErr).Once()
			},
		},
		{
			name: "probe error",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository, gen *mocks.MockGenerator) {
				gen.EXPECT().GenerateCode().Return(model.Code("abc1234"), nil).Once()
				repo.EXPECT().IsCodeUnique(ctx, model.Code("abc1234")).Return(false, storageErr).Once()
			},
		},
		{
			name: "insert error",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository, gen *mocks.MockGenerator) {
				gen.EXPECT().GenerateCode().Return(model.Code("abc1234"), nil).Once()
				repo.EXPECT().IsCodeUnique(ctx, model.Code("abc1234")).Return(true, nil).Once()
				repo.EXPECT().CreateURL(ctx, mock.Anything).Return(storageErr).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, mockRepo, mockGenerator := newTestService(t)
			ctx := context.Background()
			tt.setup(ctx, mockRepo, mockGenerator)

			// Act
			_, err := service.CreateShortURL(ctx, "https://example.com", "")

			// Assert
			assert.ErrorIs(t, err, storageErr)
		})
	}
}

// TestCreateCustomShortURL проверяет создание ссылки с пользовательским кодом
func TestCreateCustomShortURL(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(ctx context.Context, repo *mocks.MockCodeRepository)
		expectedErr error
	}{
		{
			name: "free alias",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository) {
				repo.EXPECT().IsCodeUnique(ctx, model.Code("my-link")).Return(true, nil).Once()
				repo.EXPECT().
					CreateURL(ctx, recordWith("my-link", "https://example.com", "user-1")).
					Return(nil).
					Once()
			},
		},
		{
			name: "alias taken on probe",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository) {
				repo.EXPECT().IsCodeUnique(ctx, model.Code("my-link")).Return(false, nil).Once()
			},
			expectedErr: ErrCodeTaken,
		},
		{
			name: "alias taken on insert",
			setup: func(ctx context.Context, repo *mocks.MockCodeRepository) {
				repo.EXPECT().IsCodeUnique(ctx, model.Code("my-link")).Return(true, nil).Once()
				repo.EXPECT().CreateURL(ctx, mock.Anything).Return(store.ErrAlreadyExists).Once()
			},
			expectedErr: ErrCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, mockRepo, _ := newTestService(t)
			ctx := context.Background()
			tt.setup(ctx, mockRepo)

			// Act
			code, err := service.CreateCustomShortURL(ctx, "https://example.com", "my-link", "user-1")

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.Code("my-link"), code)
		})
	}
}
