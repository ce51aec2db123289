package models

import "time"

// Notification с user_id = NULL — широковещательное, видно всем пользователям.
type Notification struct {
	ID        int        `json:"id" db:"id"`
	Message   string     `json:"message" db:"message"`
	Type      string     `json:"type" db:"type"`
	UserID    *int       `json:"user_id" db:"user_id"`
	ExpiresAt *time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NotificationView — строка пользовательского списка: уведомление плюс
// отметка прочтения этого пользователя.
type NotificationView struct {
	Notification
	ReadStatus bool `json:"read_status" db:"read_status"`
}

// NotificationSummary — строка административного списка со счётчиком
// прочитавших.
type NotificationSummary struct {
	Notification
	ReadCount int `json:"read_count" db:"read_count"`
}

// UserNotification — строка доставки/прочтения для конкретного пользователя.
type UserNotification struct {
	UserID         int       `json:"user_id" db:"user_id"`
	NotificationID int       `json:"notification_id" db:"notification_id"`
	ReadStatus     bool      `json:"read_status" db:"read_status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
