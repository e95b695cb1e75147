package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// opaqueTokenBytes количество случайных байт в токенах из писем
const opaqueTokenBytes = 32

// NewOpaqueToken возвращает случайный токен для ссылки из письма и его хеш для хранения
func NewOpaqueToken() (token, hash string, err error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	token = hex.EncodeToString(buf)
	return token, HashToken(token), nil
}

// HashToken возвращает SHA-256 токена в hex
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
