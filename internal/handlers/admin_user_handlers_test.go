package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

// Удаление собственной учётной записи режется сравнением id до обращения
// к базе, поэтому пул здесь не нужен.
func TestAdminDeleteUserSelfGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(7))
	r.DELETE("/users/:id", AdminDeleteUser(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "собственную учётную запись")
}

// Чужую учётную запись тот же админ удаляет без препятствий.
func TestAdminDeleteOtherUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	adminID, err := database.RegisterUser(ctx, pool, "Админ", uniqueEmail("admin"), "admin123", "admin")
	if err != nil {
		t.Fatalf("ошибка создания администратора: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteUser(ctx, pool, adminID) })

	targetID, err := database.RegisterUser(ctx, pool, "Цель", uniqueEmail("target"), "password123", "user")
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteUser(ctx, pool, targetID) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(adminID))
	r.DELETE("/users/:id", AdminDeleteUser(pool))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", targetID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if _, err := database.GetUserByID(ctx, pool, targetID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("пользователь не удалён: %v", err)
	}
}
