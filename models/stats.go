package models

import "github.com/shopspring/decimal"

type SystemStats struct {
	TotalUsers     int             `json:"totalUsers"`
	ActiveUsers    int             `json:"activeUsers"`
	TotalExpenses  int             `json:"totalExpenses"`
	TotalIncome    int             `json:"totalIncome"`
	TopCategories  []CategoryCount `json:"topCategories"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}

type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

// ActivityEntry — строка объединённой ленты расходов и доходов.
type ActivityEntry struct {
	Type        string          `json:"type" db:"type"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Date        string          `json:"date" db:"date"`
	UserName    string          `json:"user_name,omitempty" db:"user_name"`
}
