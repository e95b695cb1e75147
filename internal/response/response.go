// Package response содержит общие функции записи JSON ответов
package response

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageBody тело успешного ответа без данных
type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON записывает v в формате JSON с указанным статусом
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error записывает ошибку в формате {success:false,message}
func Error(w http.ResponseWriter, err error) error {
	return JSON(w, apperror.StatusCode(err), ErrorBody{
		Success: false,
		Message: apperror.Message(err),
	})
}

// Message записывает успешный ответ с сообщением
func Message(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, MessageBody{Success: true, Message: message})
}
