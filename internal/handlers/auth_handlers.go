package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register регистрирует нового пользователя.
func Register(pool *pgxpool.Pool) gin.HandlerFunc {
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
			log.Printf("ошибка регистрации: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Пользователь успешно зарегистрирован",
			"userId":  id,
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login проверяет учётные данные и открывает серверную сессию.
func Login(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Email == "" || req.Password == "" {
			fail(c, http.StatusBadRequest, "Email и пароль обязательны")
			return
		}

		user, err := database.GetUserByEmail(c.Request.Context(), pool, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusUnauthorized, "Неверный email или пароль")
				return
			}
			log.Printf("ошибка входа: %v", err)
			serverError(c)
			return
		}

		if user.Status != "active" {
			fail(c, http.StatusForbidden, "Учётная запись отключена")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			fail(c, http.StatusUnauthorized, "Неверный email или пароль")
			return
		}

		token, _, err := database.CreateSession(c.Request.Context(), pool, user.ID)
		if err != nil {
			log.Printf("ошибка создания сессии: %v", err)
			serverError(c)
			return
		}

		c.SetCookie(middleware.SessionCookie, token, int(database.SessionTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Вход выполнен",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// Logout удаляет сессию и сбрасывает cookie.
func Logout(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
			if err := database.DeleteSession(c.Request.Context(), pool, token); err != nil {
				log.Printf("ошибка выхода: %v", err)
			}
		}
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Выход выполнен"})
	}
}

// Me возвращает данные текущего пользователя (свежие, из БД).
func Me(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка получения пользователя: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": gin.H{
				"id":        user.ID,
				"name":      user.Name,
				"email":     user.Email,
				"role":      user.Role,
				"status":    user.Status,
				"createdAt": user.CreatedAt,
			},
		})
	}
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateMe меняет имя и email текущего пользователя.
func UpdateMe(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Name == "" || req.Email == "" {
			fail(c, http.StatusBadRequest, "Имя и email обязательны")
			return
		}

		err := database.UpdateUserProfile(c.Request.Context(), pool, userID, req.Name, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				fail(c, http.StatusBadRequest, "Email уже занят другим пользователем")
				return
			}
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка обновления профиля: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Профиль обновлён"})
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword меняет пароль после проверки текущего.
// При неверном текущем пароле хеш в БД не меняется.
func ChangePassword(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			fail(c, http.StatusBadRequest, "Текущий и новый пароль обязательны")
			return
		}
		if len(req.NewPassword) < 6 {
			fail(c, http.StatusBadRequest, "Новый пароль должен быть не короче 6 символов")
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка смены пароля: %v", err)
			serverError(c)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			fail(c, http.StatusBadRequest, "Текущий пароль неверен")
			return
		}

		if err := database.SetUserPassword(c.Request.Context(), pool, userID, req.NewPassword); err != nil {
			log.Printf("ошибка смены пароля: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Пароль изменён"})
	}
}
