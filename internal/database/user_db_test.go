package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	email := uniqueEmail("register")
	id, err := database.RegisterUser(ctx, pool, "Вика Кренд", email, "password123", "user")
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteUser(ctx, pool, id) })

	user, err := database.GetUserByID(ctx, pool, id)
	if err != nil {
		t.Fatalf("ошибка получения пользователя по ID: %v", err)
	}
	if user.Email != email || user.Role != "user" || user.Status != "active" {
		t.Errorf("данные пользователя не совпадают: %+v", user)
	}
	if user.PasswordHash == "password123" {
		t.Error("пароль сохранён открытым текстом")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("хеш не соответствует паролю: %v", err)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	email := uniqueEmail("dup")
	id, err := database.RegisterUser(ctx, pool, "Первый", email, "password123", "user")
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() { _ = database.DeleteUser(ctx, pool, id) })

	_, err = database.RegisterUser(ctx, pool, "Второй", email, "password123", "user")
	if !errors.Is(err, database.ErrDuplicateEmail) {
		t.Fatalf("ожидали ErrDuplicateEmail, получили: %v", err)
	}
}

func TestUpdateUserStatus(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	id := createTestUser(t, pool, "user")

	if err := database.UpdateUserStatus(ctx, pool, id, "inactive"); err != nil {
		t.Fatalf("ошибка обновления статуса: %v", err)
	}
	user, err := database.GetUserByID(ctx, pool, id)
	if err != nil {
		t.Fatalf("ошибка получения пользователя: %v", err)
	}
	if user.Status != "inactive" {
		t.Errorf("статус не обновился: %s", user.Status)
	}

	if err := database.UpdateUserStatus(ctx, pool, 0, "inactive"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("ожидали ErrNotFound для несуществующего id, получили: %v", err)
	}
}

func TestSetUserPassword(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	id := createTestUser(t, pool, "user")

	if err := database.SetUserPassword(ctx, pool, id, "newpassword"); err != nil {
		t.Fatalf("ошибка смены пароля: %v", err)
	}
	user, err := database.GetUserByID(ctx, pool, id)
	if err != nil {
		t.Fatalf("ошибка получения пользователя: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")); err != nil {
		t.Errorf("новый хеш не соответствует паролю: %v", err)
	}
}

func TestGetAllUsersNoPasswordHash(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	createTestUser(t, pool, "user")

	users, err := database.GetAllUsers(ctx, pool)
	if err != nil {
		t.Fatalf("ошибка получения пользователей: %v", err)
	}
	if len(users) == 0 {
		t.Fatal("список пользователей пуст")
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("хеш пароля попал в список пользователей: id=%d", u.ID)
		}
	}
}
