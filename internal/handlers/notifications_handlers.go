package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
)

// ListMyNotifications — видимые уведомления пользователя: широковещательные
// и адресованные ему, без просроченных.
func ListMyNotifications(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		notifications, err := database.ListNotificationsForUser(c.Request.Context(), pool, userID)
		if err != nil {
			log.Printf("ошибка получения уведомлений: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
	}
}

func MarkNotificationRead(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		userID, _ := middleware.CurrentUserID(c)

		if err := database.MarkNotificationRead(c.Request.Context(), pool, userID, id); err != nil {
			log.Printf("ошибка отметки уведомления: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Уведомление прочитано"})
	}
}

func MarkAllNotificationsRead(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		if err := database.MarkAllNotificationsRead(c.Request.Context(), pool, userID); err != nil {
			log.Printf("ошибка отметки уведомлений: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Все уведомления прочитаны"})
	}
}
