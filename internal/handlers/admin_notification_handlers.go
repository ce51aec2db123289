package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

func validNotificationType(t string) bool {
	switch t {
	case "info", "warning", "success", "error":
		return true
	}
	return false
}

// parseExpiresAt принимает RFC3339 или дату YYYY-MM-DD, пустая строка — без срока.
func parseExpiresAt(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}

func AdminListNotifications(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := database.ListNotifications(c.Request.Context(), pool)
		if err != nil {
			log.Printf("ошибка получения уведомлений: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
	}
}

func AdminGetNotification(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		n, err := database.GetNotificationByID(c.Request.Context(), pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Уведомление не найдено")
				return
			}
			log.Printf("ошибка получения уведомления: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "notification": n})
	}
}

type createNotificationRequest struct {
	Message    string `json:"message"`
	Type       string `json:"type"`
	ExpiresAt  string `json:"expires_at"`
	Recipients string `json:"recipients"`
	UserID     *int   `json:"user_id"`
}

// AdminCreateNotification создаёт уведомление и раздаёт его согласно
// recipients: all — всем пользователям, specific — одному адресату,
// both — всем плюс адресату.
func AdminCreateNotification(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Message == "" {
			fail(c, http.StatusBadRequest, "Текст уведомления обязателен")
			return
		}
		if req.Type == "" {
			req.Type = "info"
		}
		if !validNotificationType(req.Type) {
			fail(c, http.StatusBadRequest, "Недопустимый тип уведомления")
			return
		}
		if req.Recipients == "" {
			req.Recipients = "all"
		}
		if req.Recipients != "all" && req.Recipients != "specific" && req.Recipients != "both" {
			fail(c, http.StatusBadRequest, "Недопустимое значение recipients")
			return
		}
		if req.Recipients == "specific" && req.UserID == nil {
			fail(c, http.StatusBadRequest, "Для адресного уведомления требуется user_id")
			return
		}
		expiresAt, ok := parseExpiresAt(req.ExpiresAt)
		if !ok {
			fail(c, http.StatusBadRequest, "Некорректная дата истечения")
			return
		}

		id, err := database.CreateNotificationFanOut(c.Request.Context(), pool, req.Message, req.Type, expiresAt, req.Recipients, req.UserID)
		if err != nil {
			log.Printf("ошибка создания уведомления: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":        true,
			"message":        "Уведомление отправлено",
			"notificationId": id,
		})
	}
}

type updateNotificationRequest struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	ExpiresAt string `json:"expires_at"`
}

// AdminUpdateNotification меняет текст, тип и срок действия. Адресация
// (user_id и строки доставки) после создания не пересматривается.
func AdminUpdateNotification(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req updateNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Message == "" {
			fail(c, http.StatusBadRequest, "Текст уведомления обязателен")
			return
		}
		if req.Type == "" {
			req.Type = "info"
		}
		if !validNotificationType(req.Type) {
			fail(c, http.StatusBadRequest, "Недопустимый тип уведомления")
			return
		}
		expiresAt, ok := parseExpiresAt(req.ExpiresAt)
		if !ok {
			fail(c, http.StatusBadRequest, "Некорректная дата истечения")
			return
		}

		if err := database.UpdateNotification(c.Request.Context(), pool, id, req.Message, req.Type, expiresAt); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Уведомление не найдено")
				return
			}
			log.Printf("ошибка обновления уведомления: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Уведомление обновлено"})
	}
}

func AdminDeleteNotification(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := database.DeleteNotification(c.Request.Context(), pool, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Уведомление не найдено")
				return
			}
			log.Printf("ошибка удаления уведомления: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Уведомление удалено"})
	}
}
