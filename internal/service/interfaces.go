package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

// CodeRepository определяет методы хранилища, нужные для выдачи кодов
type CodeRepository interface {
	// IsCodeUnique проверяет, что код не занят
	IsCodeUnique(ctx context.Context, code model.Code) (bool, error)
	// CreateURL сохраняет запись; занятый код возвращает store.ErrAlreadyExists
	CreateURL(ctx context.Context, record *model.ShortURL) error
}

// Generator генерирует кандидатов в короткие коды
type Generator interface {
	GenerateCode() (model.Code, error)
}
