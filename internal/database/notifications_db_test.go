package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/models"
)

func findNotification(list []models.NotificationView, id int) *models.NotificationView {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// Раздача all — снимок на момент создания: ровно по одной строке доставки
// на каждую существующую учётную запись с ролью user, позже
// зарегистрированные пользователи строк не получают.
func TestNotificationFanOutSnapshot(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	createTestUser(t, pool, "user")
	createTestUser(t, pool, "user")
	createTestUser(t, pool, "admin")

	var userCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'user'`).Scan(&userCount); err != nil {
		t.Fatalf("ошибка подсчёта пользователей: %v", err)
	}

	id, err := database.CreateNotificationFanOut(ctx, pool, "Снимок получателей", "info", nil, "all", nil)
	if err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteNotification(ctx, pool, id) })

	var rowCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_notifications WHERE notification_id = $1`, id).Scan(&rowCount); err != nil {
		t.Fatalf("ошибка подсчёта строк доставки: %v", err)
	}
	if rowCount != userCount {
		t.Errorf("строк доставки %d, пользователей с ролью user %d", rowCount, userCount)
	}

	lateID := createTestUser(t, pool, "user")

	var lateRows int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_notifications WHERE notification_id = $1 AND user_id = $2`,
		id, lateID).Scan(&lateRows); err != nil {
		t.Fatalf("ошибка подсчёта строк доставки: %v", err)
	}
	if lateRows != 0 {
		t.Errorf("поздний пользователь задним числом получил строку доставки")
	}
}

// Широковещательное уведомление видно всем пользователям, строка в базе
// хранит user_id = NULL.
func TestNotificationFanOutAll(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	firstID := createTestUser(t, pool, "user")
	secondID := createTestUser(t, pool, "user")

	id, err := database.CreateNotificationFanOut(ctx, pool, "Обновление сервиса", "info", nil, "all", nil)
	if err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteNotification(ctx, pool, id) })

	stored, err := database.GetNotificationByID(ctx, pool, id)
	if err != nil {
		t.Fatalf("ошибка получения уведомления: %v", err)
	}
	if stored.UserID != nil {
		t.Errorf("широковещательное уведомление сохранено с адресатом: %v", *stored.UserID)
	}

	for _, uid := range []int{firstID, secondID} {
		visible, err := database.ListNotificationsForUser(ctx, pool, uid)
		if err != nil {
			t.Fatalf("ошибка получения уведомлений: %v", err)
		}
		if findNotification(visible, id) == nil {
			t.Errorf("пользователь %d не видит широковещательное уведомление", uid)
		}
	}
}

// Адресное уведомление видит только адресат.
func TestNotificationFanOutSpecific(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	targetID := createTestUser(t, pool, "user")
	otherID := createTestUser(t, pool, "user")

	id, err := database.CreateNotificationFanOut(ctx, pool, "Лимит бюджета превышен", "warning", nil, "specific", &targetID)
	if err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteNotification(ctx, pool, id) })

	visible, err := database.ListNotificationsForUser(ctx, pool, targetID)
	if err != nil {
		t.Fatalf("ошибка получения уведомлений: %v", err)
	}
	if findNotification(visible, id) == nil {
		t.Error("адресат не видит своё уведомление")
	}

	foreign, err := database.ListNotificationsForUser(ctx, pool, otherID)
	if err != nil {
		t.Fatalf("ошибка получения уведомлений: %v", err)
	}
	if findNotification(foreign, id) != nil {
		t.Error("чужой пользователь видит адресное уведомление")
	}
}

func TestMarkNotificationRead(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	id, err := database.CreateNotificationFanOut(ctx, pool, "Прочитайте меня", "info", nil, "specific", &userID)
	if err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteNotification(ctx, pool, id) })

	if err := database.MarkNotificationRead(ctx, pool, userID, id); err != nil {
		t.Fatalf("ошибка отметки уведомления: %v", err)
	}
	// Повторная отметка не ошибка.
	if err := database.MarkNotificationRead(ctx, pool, userID, id); err != nil {
		t.Fatalf("повторная отметка завершилась ошибкой: %v", err)
	}

	visible, err := database.ListNotificationsForUser(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения уведомлений: %v", err)
	}
	n := findNotification(visible, id)
	if n == nil {
		t.Fatal("уведомление пропало из списка")
	}
	if !n.ReadStatus {
		t.Error("отметка прочтения не сохранилась")
	}
}

// Просроченное уведомление отфильтровывается, но из базы не удаляется.
func TestExpiredNotificationHidden(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	expired := time.Now().Add(-time.Hour)
	id, err := database.CreateNotificationFanOut(ctx, pool, "Уже неактуально", "info", &expired, "specific", &userID)
	if err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteNotification(ctx, pool, id) })

	visible, err := database.ListNotificationsForUser(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения уведомлений: %v", err)
	}
	if findNotification(visible, id) != nil {
		t.Error("просроченное уведомление видно пользователю")
	}

	if _, err := database.GetNotificationByID(ctx, pool, id); err != nil {
		t.Errorf("просроченное уведомление удалено из базы: %v", err)
	}
}
