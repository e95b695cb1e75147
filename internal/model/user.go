package model

import "time"

// User представляет учетную запись пользователя.
// Токены подтверждения email и сброса пароля хранятся только в виде SHA-256 хеша.
type User struct {
	ID                         string
	Name                       string
	Email                      string
	PasswordHash               string
	IsEmailVerified            bool
	EmailVerificationTokenHash string
	EmailVerificationExpires   *time.Time
	PasswordResetTokenHash     string
	PasswordResetExpires       *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// UserResponse публичное представление пользователя
type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Public возвращает представление пользователя без секретных полей
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// VerificationTokenValid сообщает, действует ли токен подтверждения email на момент now
func (u *User) VerificationTokenValid(now time.Time) bool {
	return u.EmailVerificationTokenHash != "" &&
		u.EmailVerificationExpires != nil &&
		now.Before(*u.EmailVerificationExpires)
}

// ResetTokenValid сообщает, действует ли токен сброса пароля на момент now
func (u *User) ResetTokenValid(now time.Time) bool {
	return u.PasswordResetTokenHash != "" &&
		u.PasswordResetExpires != nil &&
		now.Before(*u.PasswordResetExpires)
}

// ClearVerificationToken удаляет токен подтверждения email
func (u *User) ClearVerificationToken() {
	u.EmailVerificationTokenHash = ""
	u.EmailVerificationExpires = nil
}

// ClearResetToken удаляет токен сброса пароля
func (u *User) ClearResetToken() {
	u.PasswordResetTokenHash = ""
	u.PasswordResetExpires = nil
}
