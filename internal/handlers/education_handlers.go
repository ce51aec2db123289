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

// ListEducation отдаёт все обучающие материалы (доступно пользователям).
func ListEducation(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := database.ListEducation(c.Request.Context(), pool)
		if err != nil {
			log.Printf("ошибка получения материалов: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "education": items})
	}
}

func GetEducation(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		item, err := database.GetEducationByID(c.Request.Context(), pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Материал не найден")
				return
			}
			log.Printf("ошибка получения материала: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "education": item})
	}
}

type educationRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateEducation — только для админов; автором записывается текущий админ.
func CreateEducation(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req educationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Title == "" || req.Content == "" {
			fail(c, http.StatusBadRequest, "Заголовок и содержание обязательны")
			return
		}

		adminID, _ := middleware.CurrentUserID(c)
		id, err := database.CreateEducation(c.Request.Context(), pool, req.Title, req.Content, adminID)
		if err != nil {
			log.Printf("ошибка создания материала: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"message":     "Материал добавлен",
			"educationId": id,
		})
	}
}

func UpdateEducation(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req educationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if req.Title == "" || req.Content == "" {
			fail(c, http.StatusBadRequest, "Заголовок и содержание обязательны")
			return
		}

		if err := database.UpdateEducation(c.Request.Context(), pool, id, req.Title, req.Content); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Материал не найден")
				return
			}
			log.Printf("ошибка обновления материала: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Материал обновлён"})
	}
}

func DeleteEducation(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := database.DeleteEducation(c.Request.Context(), pool, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Материал не найден")
				return
			}
			log.Printf("ошибка удаления материала: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Материал удалён"})
	}
}
