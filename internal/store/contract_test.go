package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend набор операций, общий для всех реализаций хранилища
type backend interface {
	CreateURL(ctx context.Context, record *model.ShortURL) error
	GetURLByCode(ctx context.Context, code model.Code) (*model.ShortURL, error)
	IncrementClicks(ctx context.Context, code model.Code) (*model.ShortURL, error)
	GetURLsByUserID(ctx context.Context, userID string) ([]model.ShortURL, error)
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByVerificationToken(ctx context.Context, tokenHash string) (*model.User, error)
	GetUserByResetToken(ctx context.Context, tokenHash string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	Ping(ctx context.Context) error
}

// runContract прогоняет одинаковые сценарии для любого хранилища.
// newBackend должен возвращать пустое хранилище.
func runContract(t *testing.T, newBackend func(t *testing.T) backend) {
	t.Run("create and read url", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()

		record := &model.ShortURL{Code: "abc1234", FullURL: "https://example.com"}
		require.NoError(t, s.CreateURL(ctx, record))
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())

		got, err := s.GetURLByCode(ctx, "abc1234")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://example.com"), got.FullURL)
		assert.Equal(t, int64(0), got.Clicks)
		assert.Empty(t, got.UserID)
	})

	t.Run("duplicate code", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()

		require.NoError(t, s.CreateURL(ctx, &model.ShortURL{Code: "dup", FullURL: "https://a.com"}))
		err := s.CreateURL(ctx, &model.ShortURL{Code: "dup", FullURL: "https://b.com"})

		assert.ErrorIs(t, err, ErrAlreadyExists)

		got, err := s.GetURLByCode(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://a.com"), got.FullURL)
	})

	t.Run("unknown code", func(t *testing.T) {
		s := newBackend(t)

		_, err := s.GetURLByCode(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.IncrementClicks(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent clicks counted once each", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()
		require.NoError(t, s.CreateURL(ctx, &model.ShortURL{Code: "hot", FullURL: "https://example.com"}))

		const clicks = 50
		var wg sync.WaitGroup
		for range clicks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.IncrementClicks(ctx, "hot")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.GetURLByCode(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, int64(clicks), got.Clicks)
	})

	t.Run("user urls newest first", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()

		owner := &model.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "h"}
		require.NoError(t, s.CreateUser(ctx, owner))

		for i := range 3 {
			record := &model.ShortURL{
				Code:    model.Code(fmt.Sprintf("own%d", i)),
				FullURL: model.URL(fmt.Sprintf("https://example.com/%d", i)),
				UserID:  owner.ID,
			}
			require.NoError(t, s.CreateURL(ctx, record))
			time.Sleep(5 * time.Millisecond)
		}
		require.NoError(t, s.CreateURL(ctx, &model.ShortURL{Code: "anon", FullURL: "https://anon.com"}))

		urls, err := s.GetURLsByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, urls, 3)
		assert.Equal(t, model.Code("own2"), urls[0].Code)
		assert.Equal(t, model.Code("own0"), urls[2].Code)
		for _, u := range urls {
			assert.Equal(t, owner.ID, u.UserID)
		}

		empty, err := s.GetURLsByUserID(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, empty)
	})

	t.Run("users", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()

		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)
		user := &model.User{
			Name:                       "Alice",
			Email:                      "alice@example.com",
			PasswordHash:               "hash",
			EmailVerificationTokenHash: "verify-hash",
			EmailVerificationExpires:   &expires,
		}
		require.NoError(t, s.CreateUser(ctx, user))
		require.NotEmpty(t, user.ID)

		err := s.CreateUser(ctx, &model.User{Name: "Alice 2", Email: "alice@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		byToken, err := s.GetUserByVerificationToken(ctx, "verify-hash")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byToken.ID)
		require.NotNil(t, byToken.EmailVerificationExpires)
		assert.WithinDuration(t, expires, *byToken.EmailVerificationExpires, time.Millisecond)

		byToken.IsEmailVerified = true
		byToken.Name = "Alice Updated"
		byToken.ClearVerificationToken()
		byToken.PasswordResetTokenHash = "reset-hash"
		byToken.PasswordResetExpires = &expires
		require.NoError(t, s.UpdateUser(ctx, byToken))

		_, err = s.GetUserByVerificationToken(ctx, "verify-hash")
		assert.ErrorIs(t, err, ErrNotFound)

		byReset, err := s.GetUserByResetToken(ctx, "reset-hash")
		require.NoError(t, err)
		assert.Equal(t, "Alice Updated", byReset.Name)
		assert.True(t, byReset.IsEmailVerified)
		assert.Nil(t, byReset.EmailVerificationExpires)

		byID, err := s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", byID.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		s := newBackend(t)
		ctx := context.Background()

		_, err := s.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		err = s.UpdateUser(ctx, &model.User{ID: "0123456789abcdef01234567", Name: "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		s := newBackend(t)
		assert.NoError(t, s.Ping(context.Background()))
	})
}
