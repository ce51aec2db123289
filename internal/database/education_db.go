package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// Обучающие материалы видны всем пользователям, правятся только админами.

func ListEducation(ctx context.Context, pool *pgxpool.Pool) ([]models.Education, error) {
	query := `
		SELECT e.id, e.title, e.content, e.created_by, u.name, e.created_at, e.updated_at
		FROM education e
		JOIN users u ON u.id = e.created_by
		ORDER BY e.created_at DESC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения материалов: %w", err)
	}
	defer rows.Close()

	items := []models.Education{}
	for rows.Next() {
		var e models.Education
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.CreatedBy, &e.CreatedByName, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения материала: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func GetEducationByID(ctx context.Context, pool *pgxpool.Pool, id int) (*models.Education, error) {
	query := `
		SELECT e.id, e.title, e.content, e.created_by, u.name, e.created_at, e.updated_at
		FROM education e
		JOIN users u ON u.id = e.created_by
		WHERE e.id = $1`

	e := &models.Education{}
	err := pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Content, &e.CreatedBy, &e.CreatedByName, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении материала: %w", err)
	}
	return e, nil
}

func CreateEducation(ctx context.Context, pool *pgxpool.Pool, title, content string, createdBy int) (int, error) {
	var id int
	err := pool.QueryRow(ctx,
		`INSERT INTO education (title, content, created_by) VALUES ($1, $2, $3) RETURNING id`,
		title, content, createdBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка при добавлении материала: %w", err)
	}
	return id, nil
}

func UpdateEducation(ctx context.Context, pool *pgxpool.Pool, id int, title, content string) error {
	tag, err := pool.Exec(ctx,
		`UPDATE education SET title = $1, content = $2, updated_at = now() WHERE id = $3`,
		title, content, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления материала: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteEducation(ctx context.Context, pool *pgxpool.Pool, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления материала: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
