package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher хеширует пароли выбранным алгоритмом и проверяет хеши обоих алгоритмов.
// Алгоритм проверки определяется по префиксу сохраненного хеша, поэтому
// смена PASSWORD_HASHER не ломает вход для уже зарегистрированных пользователей.
type PasswordHasher struct {
	algorithm  string
	bcryptCost int
	argon      argon2.Config
}

// NewPasswordHasher создает hasher для алгоритма config.HasherBcrypt или config.HasherArgon2id
func NewPasswordHasher(algorithm string) *PasswordHasher {
	return &PasswordHasher{
		algorithm:  algorithm,
		bcryptCost: bcrypt.DefaultCost,
		argon:      argon2.DefaultConfig(),
	}
}

// Hash возвращает закодированный хеш пароля
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.algorithm == config.HasherArgon2id {
		encoded, err := h.argon.HashEncoded([]byte(password))
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(encoded), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare сообщает, соответствует ли пароль хешу
func (h *PasswordHasher) Compare(hash, password string) (bool, error) {
	if strings.HasPrefix(hash, "$argon2") {
		ok, err := argon2.VerifyEncoded([]byte(password), []byte(hash))
		if err != nil {
			return false, fmt.Errorf("failed to verify password: %w", err)
		}
		return ok, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	return true, nil
}
