package handler

import "github.com/avc-dev/shortlink/internal/model"

// CreateURLRequest тело запроса на сокращение ссылки
type CreateURLRequest struct {
	URL      string `json:"url" example:"https://example.com/some/long/path"`
	CustomID string `json:"customId,omitempty" example:"my-link"`
}

// CreateURLResponse ответ с готовой короткой ссылкой
type CreateURLResponse struct {
	URL string `json:"url" example:"http://localhost:3000/aB3xY_9"`
}

// UserURLsResponse список ссылок пользователя
type UserURLsResponse struct {
	Success bool                    `json:"success"`
	URLs    []model.UserURLResponse `json:"urls"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128,strongpassword" example:"Str0ng!Pass"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128,strongpassword"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128,strongpassword"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	User    model.UserResponse `json:"user"`
}

// StatusResponse ответ GET /health
type StatusResponse struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RootResponse ответ GET /
type RootResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
