package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

func TestSessionLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	token, expiresAt, err := database.CreateSession(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("длина токена %d, ожидали 64 hex-символа", len(token))
	}
	if !expiresAt.After(time.Now()) {
		t.Error("сессия создана уже просроченной")
	}

	user, err := database.GetSessionUser(ctx, pool, token)
	if err != nil {
		t.Fatalf("ошибка получения пользователя по сессии: %v", err)
	}
	if user.ID != userID {
		t.Errorf("сессия вернула чужого пользователя: %d", user.ID)
	}

	if err := database.DeleteSession(ctx, pool, token); err != nil {
		t.Fatalf("ошибка удаления сессии: %v", err)
	}
	if _, err := database.GetSessionUser(ctx, pool, token); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удалённая сессия всё ещё работает: %v", err)
	}
}

func TestUnknownSessionToken(t *testing.T) {
	pool := testPool(t)

	_, err := database.GetSessionUser(context.Background(), pool, "0000000000000000000000000000000000000000000000000000000000000000")
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("ожидали ErrNotFound для неизвестного токена, получили: %v", err)
	}
}

// Сессии двух входов независимы: удаление одной не трогает другую.
func TestParallelSessions(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	first, _, err := database.CreateSession(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}
	second, _, err := database.CreateSession(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}
	if first == second {
		t.Fatal("два входа получили одинаковый токен")
	}

	if err := database.DeleteSession(ctx, pool, first); err != nil {
		t.Fatalf("ошибка удаления сессии: %v", err)
	}
	if _, err := database.GetSessionUser(ctx, pool, second); err != nil {
		t.Errorf("вторая сессия пострадала от удаления первой: %v", err)
	}
}
