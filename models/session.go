package models

import "time"

// Session хранится на сервере, клиенту уходит только токен в cookie.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int       `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
