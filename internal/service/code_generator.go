package service

import (
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultCodeLength длина случайного кода по умолчанию
const DefaultCodeLength = 7

// CodeGenerator генерирует случайные коды алфавитом nanoid (A-Za-z0-9_-)
type CodeGenerator struct {
	length int
}

// NewCodeGenerator создает новый генератор кодов заданной длины
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &CodeGenerator{length: length}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() (model.Code, error) {
	id, err := gonanoid.New(g.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return model.Code(id), nil
}
