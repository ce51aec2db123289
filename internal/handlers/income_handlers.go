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

type incomeRequest struct {
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func (r *incomeRequest) validate() string {
	if r.Source == "" || r.Date == "" {
		return "Источник, сумма и дата обязательны"
	}
	if !r.Amount.IsPositive() {
		return "Сумма должна быть больше 0"
	}
	if !validDate(r.Date) {
		return "Дата должна быть в формате YYYY-MM-DD"
	}
	return ""
}

func ListIncome(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		month, year := monthYearQuery(c)

		income, err := database.ListIncome(c.Request.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ошибка получения доходов: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "income": income})
	}
}

func CreateIncome(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req incomeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		income := &models.Income{
			UserID:      userID,
			Source:      req.Source,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        req.Date,
		}
		if err := database.CreateIncome(c.Request.Context(), pool, income); err != nil {
			log.Printf("ошибка создания дохода: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "Доход добавлен",
			"incomeId": income.ID,
		})
	}
}

func UpdateIncome(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req incomeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if _, err := database.GetIncomeForUser(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Доход не найден")
				return
			}
			log.Printf("ошибка проверки дохода: %v", err)
			serverError(c)
			return
		}

		income := &models.Income{
			ID:          id,
			UserID:      userID,
			Source:      req.Source,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        req.Date,
		}
		if err := database.UpdateIncome(c.Request.Context(), pool, income); err != nil {
			log.Printf("ошибка обновления дохода: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Доход обновлён"})
	}
}

func DeleteIncome(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		userID, _ := middleware.CurrentUserID(c)

		if err := database.DeleteIncome(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Доход не найден")
				return
			}
			log.Printf("ошибка удаления дохода: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Доход удалён"})
	}
}
