package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
)

// Административное управление пользователями. Хеш пароля наружу не уходит
// ни в одном ответе (models.User сериализует его как "-").

func AdminListUsers(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := database.GetAllUsers(c.Request.Context(), pool)
		if err != nil {
			log.Printf("ошибка получения пользователей: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

func AdminGetUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		user, err := database.GetUserByID(c.Request.Context(), pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка получения пользователя: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// AdminCreateUser — те же правила, что при регистрации.
func AdminCreateUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			fail(c, http.StatusBadRequest, "Имя, email и пароль обязательны")
			return
		}
		if len(req.Password) < 6 {
			fail(c, http.StatusBadRequest, "Пароль должен быть не короче 6 символов")
			return
		}
		if req.Role == "" {
			req.Role = "user"
		}
		if req.Role != "user" && req.Role != "admin" {
			fail(c, http.StatusBadRequest, "Недопустимая роль")
			return
		}

		id, err := database.RegisterUser(c.Request.Context(), pool, req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				fail(c, http.StatusBadRequest, "Пользователь с таким email уже существует")
				return
			}
			log.Printf("ошибка создания пользователя: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Пользователь создан",
			"userId":  id,
		})
	}
}

type adminUpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func AdminUpdateUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req adminUpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Name == "" || req.Email == "" || req.Role == "" || req.Status == "" {
			fail(c, http.StatusBadRequest, "Все поля обязательны")
			return
		}
		if req.Role != "user" && req.Role != "admin" {
			fail(c, http.StatusBadRequest, "Недопустимая роль")
			return
		}
		if req.Status != "active" && req.Status != "inactive" {
			fail(c, http.StatusBadRequest, "Недопустимый статус")
			return
		}

		err := database.UpdateUser(c.Request.Context(), pool, id, req.Name, req.Email, req.Role, req.Status)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				fail(c, http.StatusBadRequest, "Email уже занят другим пользователем")
				return
			}
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка обновления пользователя: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Пользователь обновлён"})
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func AdminUpdateUserStatus(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Status != "active" && req.Status != "inactive" {
			fail(c, http.StatusBadRequest, "Статус должен быть active или inactive")
			return
		}

		if err := database.UpdateUserStatus(c.Request.Context(), pool, id, req.Status); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка обновления статуса: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Статус пользователя обновлён"})
	}
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// AdminResetPassword ставит новый пароль без проверки старого —
// в отличие от самостоятельной смены пароля.
func AdminResetPassword(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if len(req.NewPassword) < 6 {
			fail(c, http.StatusBadRequest, "Новый пароль должен быть не короче 6 символов")
			return
		}

		if err := database.SetUserPassword(c.Request.Context(), pool, id, req.NewPassword); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка сброса пароля: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Пароль сброшен"})
	}
}

// AdminDeleteUser удаляет пользователя. Свою собственную учётную запись
// админ удалить не может: сравнивается id цели с id сессии.
func AdminDeleteUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		adminID, _ := middleware.CurrentUserID(c)
		if id == adminID {
			fail(c, http.StatusBadRequest, "Нельзя удалить собственную учётную запись")
			return
		}

		if err := database.DeleteUser(c.Request.Context(), pool, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка удаления пользователя: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Пользователь удалён"})
	}
}
