package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

// Ключи контекста запроса. Никакого глобального состояния сессии:
// данные кладутся в контекст один раз при разборе cookie.
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
)

// SessionCookie — имя cookie с непрозрачным токеном сессии.
const SessionCookie = "mybudget_session"

// LoadSession разбирает cookie и кладёт данные пользователя в контекст.
// Неизвестный или просроченный токен просто оставляет запрос анонимным.
func LoadSession(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := database.GetSessionUser(c.Request.Context(), pool, token)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				log.Printf("ошибка загрузки сессии: %v", err)
			}
			c.Next()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextUserName, user.Name)
		c.Set(ContextUserEmail, user.Email)
		c.Next()
	}
}

// CurrentUserID возвращает id пользователя из контекста запроса.
func CurrentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// RequireAuth пропускает только аутентифицированные запросы.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Требуется аутентификация",
			})
			return
		}
		c.Next()
	}
}

// RequireActiveUser — аутентифицирован и активен. Статус перечитывается
// из БД на каждом запросе: деактивированный пользователь получает отказ
// уже на следующем обращении, хотя его cookie ещё жив.
func RequireActiveUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Требуется аутентификация",
			})
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Пользователь не найден",
				})
				return
			}
			log.Printf("ошибка проверки пользователя: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Внутренняя ошибка сервера",
			})
			return
		}

		if user.Status != "active" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Учётная запись отключена",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin — активный пользователь с ролью admin; роль тоже
// перечитывается из БД, разжалованный админ блокируется сразу.
func RequireAdmin(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Требуется аутентификация",
			})
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Пользователь не найден",
				})
				return
			}
			log.Printf("ошибка проверки администратора: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Внутренняя ошибка сервера",
			})
			return
		}

		if user.Status != "active" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Учётная запись отключена",
			})
			return
		}
		if user.Role != "admin" {
			log.Printf("отказ в административном доступе: пользователь %d, роль %s", user.ID, user.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Требуются права администратора",
			})
			return
		}
		c.Next()
	}
}
