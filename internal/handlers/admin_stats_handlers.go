package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
)

func AdminStats(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := database.GetSystemStats(c.Request.Context(), pool)
		if err != nil {
			log.Printf("ошибка сбора статистики: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// parseActivityLimit читает limit из запроса: мусор и неположительные
// значения дают значение по умолчанию, верхняя граница зажата.
func parseActivityLimit(raw string) int {
	limit := defaultActivityLimit
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return limit
}

// AdminUserActivity — последние операции конкретного пользователя,
// limit управляется запросом (по умолчанию 50).
func AdminUserActivity(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		limit := parseActivityLimit(c.Query("limit"))

		if _, err := database.GetUserByID(c.Request.Context(), pool, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("ошибка получения пользователя: %v", err)
			serverError(c)
			return
		}

		activity, err := database.GetUserActivity(c.Request.Context(), pool, id, limit)
		if err != nil {
			log.Printf("ошибка получения активности: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "activity": activity})
	}
}
