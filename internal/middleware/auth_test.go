package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

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

// Анонимный запрос режется до обращения к базе, пул не нужен.
func TestRequireAuthAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Требуется аутентификация")
}

func TestRequireActiveUserAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", RequireActiveUser(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAdmin(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Деактивация действует со следующего запроса: cookie ещё жив,
// но перечитанный из базы статус даёт 403.
func TestDeactivatedUserBlockedOnNextRequest(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	email := fmt.Sprintf("inactive.%d@example.com", time.Now().UnixNano())
	userID, err := database.RegisterUser(ctx, pool, "Отключаемый", email, "password123", "user")
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteUser(ctx, pool, userID) })

	token, _, err := database.CreateSession(ctx, pool, userID)
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(pool))
	r.GET("/user", RequireActiveUser(pool), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("активный пользователь получил %d, ожидали 200", code)
	}

	if err := database.UpdateUserStatus(ctx, pool, userID, "inactive"); err != nil {
		t.Fatalf("ошибка деактивации: %v", err)
	}

	if code := do(); code != http.StatusForbidden {
		t.Errorf("деактивированный пользователь получил %d, ожидали 403", code)
	}
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := CurrentUserID(c); ok {
		t.Error("пустой контекст вернул id пользователя")
	}

	c.Set(ContextUserID, 42)
	id, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, 42, id)
}
