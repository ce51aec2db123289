package models

import "github.com/shopspring/decimal"

// Budget — лимит расходов по категории на месяц.
// На пару (user_id, category, month, year) допускается не больше одной строки.
type Budget struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Category    string          `json:"category" db:"category"`
	LimitAmount decimal.Decimal `json:"limit_amount" db:"limit_amount"`
	Month       int             `json:"month" db:"month"`
	Year        int             `json:"year" db:"year"`
}
