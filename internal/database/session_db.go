package database

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// SessionTTL — фиксированное окно жизни сессии.
const SessionTTL = 24 * time.Hour

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("ошибка генерации токена сессии: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CreateSession создаёт серверную сессию и возвращает непрозрачный токен.
func CreateSession(ctx context.Context, pool *pgxpool.Pool, userID int) (string, time.Time, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(SessionTTL)
	_, err = pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("ошибка создания сессии: %w", err)
	}
	return token, expiresAt, nil
}

// GetSessionUser возвращает пользователя по живому токену.
// Просроченная или неизвестная сессия — ErrNotFound.
func GetSessionUser(ctx context.Context, pool *pgxpool.Pool, token string) (*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.status
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > now()`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, token).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения сессии: %w", err)
	}
	return user, nil
}

func DeleteSession(ctx context.Context, pool *pgxpool.Pool, token string) error {
	if _, err := pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

// DeleteExpiredSessions чистит просроченные сессии, вызывается по расписанию.
func DeleteExpiredSessions(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	tag, err := pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("ошибка очистки сессий: %w", err)
	}
	return tag.RowsAffected(), nil
}
