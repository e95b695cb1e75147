package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store операции хранилища, общие для памяти, PostgreSQL и MongoDB
type Store interface {
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
	Close(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

// Close освобождает ресурсы хранилища
func (r *Repository) Close(ctx context.Context) error {
	return r.underlying.Close(ctx)
}
