package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// Пороги статуса бюджета — фиксированная политика, не настраивается.
var warningThreshold = decimal.RequireFromString("0.8")

// BudgetStatus классифицирует фактические траты против лимита:
// over при actual > limit, warning при actual > 0.8*limit, иначе good.
// Сравнение в decimal, граница 80.00/80.01 различается точно.
func BudgetStatus(actual, limit decimal.Decimal) string {
	switch {
	case actual.GreaterThan(limit):
		return "over"
	case actual.GreaterThan(limit.Mul(warningThreshold)):
		return "warning"
	default:
		return "good"
	}
}

// GetSpendingSummary — сводка за месяц: расходы по категориям, тренд за
// последние полгода, итоги доходов/расходов и сбережения (могут быть
// отрицательными).
func GetSpendingSummary(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) (*models.SpendingSummary, error) {
	summary := &models.SpendingSummary{
		ExpensesByCategory: []models.CategoryTotal{},
		SpendingTrend:      []models.MonthTotal{},
	}

	rows, err := pool.Query(ctx, `
		SELECT category, SUM(amount) AS total
		FROM expenses
		WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
		GROUP BY category
		ORDER BY total DESC`, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения расходов по категориям: %w", err)
	}
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("ошибка чтения категории: %w", err)
		}
		summary.ExpensesByCategory = append(summary.ExpensesByCategory, ct)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM') AS month, SUM(amount) AS total
		FROM expenses
		WHERE user_id = $1 AND date >= CURRENT_DATE - INTERVAL '6 months'
		GROUP BY to_char(date, 'YYYY-MM')
		ORDER BY month`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения тренда расходов: %w", err)
	}
	for rows.Next() {
		var mt models.MonthTotal
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("ошибка чтения тренда: %w", err)
		}
		summary.SpendingTrend = append(summary.SpendingTrend, mt)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM income
		WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`,
		userID, month, year).Scan(&summary.TotalIncome)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчёта доходов: %w", err)
	}

	err = pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`,
		userID, month, year).Scan(&summary.TotalExpenses)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчёта расходов: %w", err)
	}

	summary.Savings = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary, nil
}

// GetBudgetAnalysis — факт против лимита по каждому бюджету периода.
// Расходы в соединении фильтруются и по владельцу тоже, чужие траты
// в чужой анализ не попадают.
func GetBudgetAnalysis(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.BudgetAnalysisRow, error) {
	query := `
		SELECT b.category, b.limit_amount, COALESCE(SUM(e.amount), 0) AS actual_spent
		FROM budgets b
		LEFT JOIN expenses e
			ON e.user_id = b.user_id
			AND e.category = b.category
			AND EXTRACT(MONTH FROM e.date) = b.month
			AND EXTRACT(YEAR FROM e.date) = b.year
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
		GROUP BY b.id, b.category, b.limit_amount
		ORDER BY b.category`

	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("ошибка анализа бюджета: %w", err)
	}
	defer rows.Close()

	analysis := []models.BudgetAnalysisRow{}
	for rows.Next() {
		var row models.BudgetAnalysisRow
		if err := rows.Scan(&row.Category, &row.BudgetLimit, &row.ActualSpent); err != nil {
			return nil, fmt.Errorf("ошибка чтения анализа: %w", err)
		}
		row.Remaining = row.BudgetLimit.Sub(row.ActualSpent)
		row.Status = BudgetStatus(row.ActualSpent, row.BudgetLimit)
		analysis = append(analysis, row)
	}
	return analysis, rows.Err()
}
