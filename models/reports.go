package models

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Category string          `json:"category" db:"category"`
	Total    decimal.Decimal `json:"total" db:"total"`
}

type MonthTotal struct {
	Month string          `json:"month" db:"month"`
	Total decimal.Decimal `json:"total" db:"total"`
}

type SpendingSummary struct {
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	SpendingTrend      []MonthTotal    `json:"spendingTrend"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	Savings            decimal.Decimal `json:"savings"`
}

type BudgetAnalysisRow struct {
	Category    string          `json:"category" db:"category"`
	BudgetLimit decimal.Decimal `json:"budget_limit" db:"budget_limit"`
	ActualSpent decimal.Decimal `json:"actual_spent" db:"actual_spent"`
	Remaining   decimal.Decimal `json:"remaining" db:"remaining"`
	Status      string          `json:"status" db:"status"`
}
