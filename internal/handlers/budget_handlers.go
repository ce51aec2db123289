package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
	"github.com/valeriaulyamaeva/mybudget/models"
)

type budgetRequest struct {
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

func (r *budgetRequest) validate() string {
	if r.Category == "" || r.Month == 0 || r.Year == 0 {
		return "Категория, лимит, месяц и год обязательны"
	}
	if !r.LimitAmount.IsPositive() {
		return "Лимит должен быть больше 0"
	}
	if r.Month < 1 || r.Month > 12 {
		return "Месяц должен быть от 1 до 12"
	}
	return ""
}

func ListBudgets(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		month, year := monthYearQuery(c)

		budgets, err := database.ListBudgets(c.Request.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ошибка получения бюджетов: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "budgets": budgets})
	}
}

// CreateBudget: повтор пары (категория, месяц, год) — отдельная ошибка
// конфликта, не общий сбой сервера.
func CreateBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req budgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		budget := &models.Budget{
			UserID:      userID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			Month:       req.Month,
			Year:        req.Year,
		}
		if err := database.CreateBudget(c.Request.Context(), pool, budget); err != nil {
			if errors.Is(err, database.ErrDuplicateBudget) {
				fail(c, http.StatusBadRequest, "Бюджет для этой категории на этот месяц и год уже существует")
				return
			}
			log.Printf("ошибка создания бюджета: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "Бюджет добавлен",
			"budgetId": budget.ID,
		})
	}
}

func UpdateBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req budgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if _, err := database.GetBudgetForUser(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Бюджет не найден")
				return
			}
			log.Printf("ошибка проверки бюджета: %v", err)
			serverError(c)
			return
		}

		budget := &models.Budget{
			ID:          id,
			UserID:      userID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			Month:       req.Month,
			Year:        req.Year,
		}
		if err := database.UpdateBudget(c.Request.Context(), pool, budget); err != nil {
			if errors.Is(err, database.ErrDuplicateBudget) {
				fail(c, http.StatusBadRequest, "Бюджет для этой категории на этот месяц и год уже существует")
				return
			}
			log.Printf("ошибка обновления бюджета: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Бюджет обновлён"})
	}
}

func DeleteBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		userID, _ := middleware.CurrentUserID(c)

		if err := database.DeleteBudget(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Бюджет не найден")
				return
			}
			log.Printf("ошибка удаления бюджета: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Бюджет удалён"})
	}
}
