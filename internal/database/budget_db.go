package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

func ListBudgets(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, month, year
		FROM budgets
		WHERE user_id = $1`
	args := []any{userID}

	if month > 0 && year > 0 {
		query += fmt.Sprintf(" AND month = $%d AND year = $%d", len(args)+1, len(args)+2)
		args = append(args, month, year)
	}
	query += " ORDER BY year DESC, month DESC, category"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения бюджетов: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.Month, &b.Year); err != nil {
			return nil, fmt.Errorf("ошибка чтения бюджета: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// CreateBudget вставляет бюджет. Нарушение уникальности
// (user, category, month, year) — ErrDuplicateBudget.
func CreateBudget(ctx context.Context, pool *pgxpool.Pool, b *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, limit_amount, month, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := pool.QueryRow(ctx, query, b.UserID, b.Category, b.LimitAmount, b.Month, b.Year).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBudget
		}
		return fmt.Errorf("ошибка при добавлении бюджета: %w", err)
	}
	return nil
}

func GetBudgetForUser(ctx context.Context, pool *pgxpool.Pool, id, userID int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, month, year
		FROM budgets
		WHERE id = $1 AND user_id = $2`

	b := &models.Budget{}
	err := pool.QueryRow(ctx, query, id, userID).Scan(
		&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.Month, &b.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении бюджета: %w", err)
	}
	return b, nil
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, b *models.Budget) error {
	query := `
		UPDATE budgets
		SET category = $1, limit_amount = $2, month = $3, year = $4
		WHERE id = $5 AND user_id = $6`

	tag, err := pool.Exec(ctx, query, b.Category, b.LimitAmount, b.Month, b.Year, b.ID, b.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBudget
		}
		return fmt.Errorf("ошибка обновления бюджета: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, id, userID int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления бюджета: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
