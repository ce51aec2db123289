package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// GetSystemStats собирает сводку для административной панели.
func GetSystemStats(ctx context.Context, pool *pgxpool.Pool) (*models.SystemStats, error) {
	stats := &models.SystemStats{
		TopCategories:  []models.CategoryCount{},
		RecentActivity: []models.ActivityEntry{},
	}

	err := pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE status = 'active'),
			(SELECT COUNT(*) FROM expenses),
			(SELECT COUNT(*) FROM income)`).
		Scan(&stats.TotalUsers, &stats.ActiveUsers, &stats.TotalExpenses, &stats.TotalIncome)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения статистики: %w", err)
	}

	rows, err := pool.Query(ctx, `
		SELECT category, COUNT(*) AS count
		FROM expenses
		GROUP BY category
		ORDER BY count DESC
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения топ-категорий: %w", err)
	}
	for rows.Next() {
		var cc models.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("ошибка чтения категории: %w", err)
		}
		stats.TopCategories = append(stats.TopCategories, cc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx, `
		SELECT type, description, amount, date, user_name FROM (
			SELECT 'expense' AS type, e.category AS description, e.amount,
			       to_char(e.date, 'YYYY-MM-DD') AS date, u.name AS user_name, e.created_at
			FROM expenses e
			JOIN users u ON u.id = e.user_id
			WHERE e.created_at >= now() - INTERVAL '30 days'
			UNION ALL
			SELECT 'income' AS type, i.source AS description, i.amount,
			       to_char(i.date, 'YYYY-MM-DD') AS date, u.name AS user_name, i.created_at
			FROM income i
			JOIN users u ON u.id = i.user_id
			WHERE i.created_at >= now() - INTERVAL '30 days'
		) activity
		ORDER BY created_at DESC
		LIMIT 20`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ленты активности: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a models.ActivityEntry
		if err := rows.Scan(&a.Type, &a.Description, &a.Amount, &a.Date, &a.UserName); err != nil {
			return nil, fmt.Errorf("ошибка чтения активности: %w", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, a)
	}
	return stats, rows.Err()
}

// GetUserActivity — лента расходов и доходов одного пользователя,
// свежие записи первыми.
func GetUserActivity(ctx context.Context, pool *pgxpool.Pool, userID, limit int) ([]models.ActivityEntry, error) {
	query := `
		SELECT type, description, amount, date FROM (
			SELECT 'expense' AS type, category AS description, amount,
			       to_char(date, 'YYYY-MM-DD') AS date, created_at
			FROM expenses
			WHERE user_id = $1
			UNION ALL
			SELECT 'income' AS type, source AS description, amount,
			       to_char(date, 'YYYY-MM-DD') AS date, created_at
			FROM income
			WHERE user_id = $1
		) activity
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активности пользователя: %w", err)
	}
	defer rows.Close()

	activity := []models.ActivityEntry{}
	for rows.Next() {
		var a models.ActivityEntry
		if err := rows.Scan(&a.Type, &a.Description, &a.Amount, &a.Date); err != nil {
			return nil, fmt.Errorf("ошибка чтения активности: %w", err)
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}
