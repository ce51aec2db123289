package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

// testPool подключается к тестовой базе из .env или переменных окружения.
// Без настроенной базы интеграционные тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()

	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		t.Skip("тестовая база не настроена (DATABASE_URL или DB_HOST)")
	}

	pool, err := database.ConnectDB(context.Background())
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.InitSchema(context.Background(), pool); err != nil {
		t.Fatalf("ошибка инициализации схемы: %v", err)
	}
	return pool
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s.%d@example.com", prefix, time.Now().UnixNano())
}

// createTestUser регистрирует пользователя и возвращает его id.
func createTestUser(t *testing.T, pool *pgxpool.Pool, role string) int {
	t.Helper()
	id, err := database.RegisterUser(context.Background(), pool, "Тестовый Пользователь", uniqueEmail("test"), "password123", role)
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() {
		_ = database.DeleteUser(context.Background(), pool, id)
	})
	return id
}
