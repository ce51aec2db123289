package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

func ListIncome(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.Income, error) {
	query := `
		SELECT id, user_id, source, amount, description, to_char(date, 'YYYY-MM-DD'), created_at
		FROM income
		WHERE user_id = $1`
	args := []any{userID}

	if month > 0 && year > 0 {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM date) = $%d AND EXTRACT(YEAR FROM date) = $%d", len(args)+1, len(args)+2)
		args = append(args, month, year)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения доходов: %w", err)
	}
	defer rows.Close()

	income := []models.Income{}
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.UserID, &in.Source, &in.Amount, &in.Description, &in.Date, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения дохода: %w", err)
		}
		income = append(income, in)
	}
	return income, rows.Err()
}

func CreateIncome(ctx context.Context, pool *pgxpool.Pool, in *models.Income) error {
	query := `
		INSERT INTO income (user_id, source, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query, in.UserID, in.Source, in.Amount, in.Description, in.Date).
		Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении дохода: %w", err)
	}
	return nil
}

func GetIncomeForUser(ctx context.Context, pool *pgxpool.Pool, id, userID int) (*models.Income, error) {
	query := `
		SELECT id, user_id, source, amount, description, to_char(date, 'YYYY-MM-DD'), created_at
		FROM income
		WHERE id = $1 AND user_id = $2`

	in := &models.Income{}
	err := pool.QueryRow(ctx, query, id, userID).Scan(
		&in.ID, &in.UserID, &in.Source, &in.Amount, &in.Description, &in.Date, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении дохода: %w", err)
	}
	return in, nil
}

func UpdateIncome(ctx context.Context, pool *pgxpool.Pool, in *models.Income) error {
	query := `
		UPDATE income
		SET source = $1, amount = $2, description = $3, date = $4
		WHERE id = $5 AND user_id = $6`

	tag, err := pool.Exec(ctx, query, in.Source, in.Amount, in.Description, in.Date, in.ID, in.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления дохода: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteIncome(ctx context.Context, pool *pgxpool.Pool, id, userID int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM income WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления дохода: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
