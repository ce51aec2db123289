package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Income struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Source      string          `json:"source" db:"source"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Date        string          `json:"date" db:"date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
