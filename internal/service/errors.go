package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrCodeTaken возвращается, когда выбранный пользователем код уже занят
	ErrCodeTaken = errors.New("code already taken")

	// ErrInvalidToken возвращается для неподписанного, просроченного или чужого JWT
	ErrInvalidToken = errors.New("invalid token")
)
