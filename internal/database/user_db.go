package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser хеширует пароль и создаёт пользователя.
// Повторный email возвращает ErrDuplicateEmail.
func RegisterUser(ctx context.Context, pool *pgxpool.Pool, name, email, password, role string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	var id int
	query := `
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id`
	err = pool.QueryRow(ctx, query, name, email, hash, role).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("ошибка при добавлении пользователя: %w", err)
	}
	return id, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, status, created_at, updated_at
		FROM users
		WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по email: %w", err)
	}
	return user, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, status, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %w", err)
	}
	return user, nil
}

func GetAllUsers(ctx context.Context, pool *pgxpool.Pool) ([]models.User, error) {
	query := `
		SELECT id, name, email, role, status, created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// emailTakenByOther проверяет, занят ли email другим пользователем.
func emailTakenByOther(ctx context.Context, pool *pgxpool.Pool, email string, userID int) (bool, error) {
	var id int
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1 AND id != $2`, email, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ошибка проверки email: %w", err)
	}
	return true, nil
}

// UpdateUserProfile меняет имя и email самого пользователя.
func UpdateUserProfile(ctx context.Context, pool *pgxpool.Pool, userID int, name, email string) error {
	taken, err := emailTakenByOther(ctx, pool, email, userID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	tag, err := pool.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, updated_at = now() WHERE id = $3`,
		name, email, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("ошибка обновления профиля: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUser — административное обновление: имя, email, роль, статус.
func UpdateUser(ctx context.Context, pool *pgxpool.Pool, userID int, name, email, role, status string) error {
	taken, err := emailTakenByOther(ctx, pool, email, userID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	tag, err := pool.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, role = $3, status = $4, updated_at = now() WHERE id = $5`,
		name, email, role, status, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserStatus(ctx context.Context, pool *pgxpool.Pool, userID int, status string) error {
	tag, err := pool.Exec(ctx,
		`UPDATE users SET status = $1, updated_at = now() WHERE id = $2`, status, userID)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetUserPassword хеширует и записывает новый пароль.
func SetUserPassword(ctx context.Context, pool *pgxpool.Pool, userID int, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	tag, err := pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, userID)
	if err != nil {
		return fmt.Errorf("ошибка обновления пароля: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
