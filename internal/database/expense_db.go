package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// ListExpenses возвращает расходы владельца. Фильтр по месяцу/году
// применяется только когда заданы оба значения, фильтр по категории —
// когда она не пуста. Все значения уходят параметрами, в текст запроса
// ничего не подставляется.
func ListExpenses(ctx context.Context, pool *pgxpool.Pool, userID, month, year int, category string) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, category, amount, description, to_char(date, 'YYYY-MM-DD'), created_at
		FROM expenses
		WHERE user_id = $1`
	args := []any{userID}

	if month > 0 && year > 0 {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM date) = $%d AND EXTRACT(YEAR FROM date) = $%d", len(args)+1, len(args)+2)
		args = append(args, month, year)
	}
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", len(args)+1)
		args = append(args, category)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения расходов: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения расхода: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, e *models.Expense) error {
	query := `
		INSERT INTO expenses (user_id, category, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query, e.UserID, e.Category, e.Amount, e.Description, e.Date).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении расхода: %w", err)
	}
	return nil
}

// GetExpenseForUser — проверка владения: выборка всегда по паре
// (id, user_id), чужая строка неотличима от отсутствующей.
func GetExpenseForUser(ctx context.Context, pool *pgxpool.Pool, id, userID int) (*models.Expense, error) {
	query := `
		SELECT id, user_id, category, amount, description, to_char(date, 'YYYY-MM-DD'), created_at
		FROM expenses
		WHERE id = $1 AND user_id = $2`

	e := &models.Expense{}
	err := pool.QueryRow(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Description, &e.Date, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении расхода: %w", err)
	}
	return e, nil
}

func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, e *models.Expense) error {
	query := `
		UPDATE expenses
		SET category = $1, amount = $2, description = $3, date = $4
		WHERE id = $5 AND user_id = $6`

	tag, err := pool.Exec(ctx, query, e.Category, e.Amount, e.Description, e.Date, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления расхода: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, id, userID int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления расхода: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
