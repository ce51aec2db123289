package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// Видимость уведомления для пользователя: широковещательное (user_id IS NULL)
// или адресованное ему, и срок действия не истёк. Просроченные строки
// не удаляются, только отфильтровываются.

// ListNotificationsForUser возвращает видимые уведомления с отметкой
// о прочтении для этого пользователя, новые первыми.
func ListNotificationsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.NotificationView, error) {
	query := `
		SELECT n.id, n.message, n.type, n.user_id, n.expires_at, n.created_at,
		       COALESCE(un.read_status, FALSE)
		FROM notifications n
		LEFT JOIN user_notifications un
			ON un.notification_id = n.id AND un.user_id = $1
		WHERE (n.user_id IS NULL OR n.user_id = $1)
		  AND (n.expires_at IS NULL OR n.expires_at > now())
		ORDER BY n.created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := []models.NotificationView{}
	for rows.Next() {
		var n models.NotificationView
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.UserID, &n.ExpiresAt, &n.CreatedAt, &n.ReadStatus); err != nil {
			return nil, fmt.Errorf("ошибка чтения уведомления: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead ставит отметку прочтения, создавая строку доставки
// при необходимости.
func MarkNotificationRead(ctx context.Context, pool *pgxpool.Pool, userID, notificationID int) error {
	query := `
		INSERT INTO user_notifications (user_id, notification_id, read_status)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id, notification_id) DO UPDATE SET read_status = TRUE`

	if _, err := pool.Exec(ctx, query, userID, notificationID); err != nil {
		return fmt.Errorf("ошибка отметки уведомления: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead помечает прочитанными только уведомления из
// множества видимости пользователя, ничего за его пределами.
func MarkAllNotificationsRead(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	query := `
		INSERT INTO user_notifications (user_id, notification_id, read_status)
		SELECT $1, n.id, TRUE
		FROM notifications n
		WHERE (n.user_id IS NULL OR n.user_id = $1)
		  AND (n.expires_at IS NULL OR n.expires_at > now())
		ON CONFLICT (user_id, notification_id) DO UPDATE SET read_status = TRUE`

	if _, err := pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("ошибка отметки уведомлений: %w", err)
	}
	return nil
}

// ListNotifications — административный список со счётчиком прочитавших.
func ListNotifications(ctx context.Context, pool *pgxpool.Pool) ([]models.NotificationSummary, error) {
	query := `
		SELECT n.id, n.message, n.type, n.user_id, n.expires_at, n.created_at,
		       COUNT(un.user_id) FILTER (WHERE un.read_status)
		FROM notifications n
		LEFT JOIN user_notifications un ON un.notification_id = n.id
		GROUP BY n.id
		ORDER BY n.created_at DESC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %w", err)
	}
	defer rows.Close()

	notifications := []models.NotificationSummary{}
	for rows.Next() {
		var n models.NotificationSummary
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.UserID, &n.ExpiresAt, &n.CreatedAt, &n.ReadCount); err != nil {
			return nil, fmt.Errorf("ошибка чтения уведомления: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func GetNotificationByID(ctx context.Context, pool *pgxpool.Pool, id int) (*models.Notification, error) {
	n := &models.Notification{}
	err := pool.QueryRow(ctx,
		`SELECT id, message, type, user_id, expires_at, created_at FROM notifications WHERE id = $1`, id).
		Scan(&n.ID, &n.Message, &n.Type, &n.UserID, &n.ExpiresAt, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении уведомления: %w", err)
	}
	return n, nil
}

// CreateNotificationFanOut создаёт уведомление и строки доставки по директиве
// recipients (all | specific | both).
//
// all и both сохраняют user_id = NULL (широковещание); строки доставки
// создаются для всех учётных записей с ролью user, существующих на момент
// создания — позже зарегистрированные пользователи их не получают.
// specific сохраняет user_id адресата и создаёт одну строку доставки.
// Раздача — последовательность независимых вставок, без общей транзакции:
// частичный результат при сбое допустим, ошибка уходит вызывающему.
func CreateNotificationFanOut(ctx context.Context, pool *pgxpool.Pool, message, notifType string, expiresAt *time.Time, recipients string, targetID *int) (int, error) {
	var storedUserID *int
	if recipients == "specific" {
		storedUserID = targetID
	}

	var id int
	err := pool.QueryRow(ctx,
		`INSERT INTO notifications (message, type, expires_at, user_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		message, notifType, expiresAt, storedUserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания уведомления: %w", err)
	}

	if recipients == "all" || recipients == "both" {
		rows, err := pool.Query(ctx, `SELECT id FROM users WHERE role = 'user'`)
		if err != nil {
			return 0, fmt.Errorf("ошибка выборки получателей: %w", err)
		}
		recipientsIDs := []int{}
		for rows.Next() {
			var uid int
			if err := rows.Scan(&uid); err != nil {
				rows.Close()
				return 0, fmt.Errorf("ошибка чтения получателя: %w", err)
			}
			recipientsIDs = append(recipientsIDs, uid)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("ошибка выборки получателей: %w", err)
		}

		for _, uid := range recipientsIDs {
			_, err := pool.Exec(ctx,
				`INSERT INTO user_notifications (user_id, notification_id) VALUES ($1, $2)
				 ON CONFLICT (user_id, notification_id) DO NOTHING`,
				uid, id)
			if err != nil {
				return 0, fmt.Errorf("ошибка раздачи уведомления пользователю %d: %w", uid, err)
			}
		}
	}

	if (recipients == "specific" || recipients == "both") && targetID != nil {
		// Для both адресат мог уже получить строку в общей раздаче —
		// повторная вставка молча игнорируется.
		_, err := pool.Exec(ctx,
			`INSERT INTO user_notifications (user_id, notification_id) VALUES ($1, $2)
			 ON CONFLICT (user_id, notification_id) DO NOTHING`,
			*targetID, id)
		if err != nil {
			return 0, fmt.Errorf("ошибка раздачи уведомления пользователю %d: %w", *targetID, err)
		}
	}

	return id, nil
}

func UpdateNotification(ctx context.Context, pool *pgxpool.Pool, id int, message, notifType string, expiresAt *time.Time) error {
	tag, err := pool.Exec(ctx,
		`UPDATE notifications SET message = $1, type = $2, expires_at = $3 WHERE id = $4`,
		message, notifType, expiresAt, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления уведомления: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteNotification(ctx context.Context, pool *pgxpool.Pool, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления уведомления: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
