package model

import "time"

// Code короткий код ссылки (сегмент пути после BASE_URL)
type Code string

func (c Code) String() string {
	return string(c)
}

// URL полный адрес, на который ведет короткая ссылка
type URL string

func (u URL) String() string {
	return string(u)
}

// ShortURL представляет запись короткой ссылки в хранилище
type ShortURL struct {
	ID        string
	Code      Code
	FullURL   URL
	Clicks    int64
	UserID    string
	CreatedAt time.Time
}

// UserURLResponse представляет ссылку пользователя в ответе /api/user/urls
type UserURLResponse struct {
	ID        string    `json:"id"`
	ShortURL  string    `json:"short_url"`
	FullURL   string    `json:"full_url"`
	Clicks    int64     `json:"clicks"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
