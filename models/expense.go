package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Category    string          `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Date        string          `json:"date" db:"date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
