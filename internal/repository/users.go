package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.underlying.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, err := r.underlying.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.underlying.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserByVerificationToken ищет пользователя по хешу токена подтверждения.
// Пустой хеш никогда не совпадает.
func (r *Repository) GetUserByVerificationToken(ctx context.Context, tokenHash string) (*model.User, error) {
	if tokenHash == "" {
		return nil, fmt.Errorf("empty verification token: %w", store.ErrNotFound)
	}

	user, err := r.underlying.GetUserByVerificationToken(ctx, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by verification token: %w", err)
	}
	return user, nil
}

// GetUserByResetToken ищет пользователя по хешу токена сброса пароля.
// Пустой хеш никогда не совпадает.
func (r *Repository) GetUserByResetToken(ctx context.Context, tokenHash string) (*model.User, error) {
	if tokenHash == "" {
		return nil, fmt.Errorf("empty reset token: %w", store.ErrNotFound)
	}

	user, err := r.underlying.GetUserByResetToken(ctx, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *model.User) error {
	if err := r.underlying.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
