package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// Даты ходят строками YYYY-MM-DD и возвращаются дословно,
// без сдвигов часового пояса.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

type expenseRequest struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func (r *expenseRequest) validate() string {
	if r.Category == "" || r.Date == "" {
		return "Категория, сумма и дата обязательны"
	}
	if !r.Amount.IsPositive() {
		return "Сумма должна быть больше 0"
	}
	if !validDate(r.Date) {
		return "Дата должна быть в формате YYYY-MM-DD"
	}
	return ""
}

// ListExpenses возвращает расходы владельца с фильтрами month/year/category.
func ListExpenses(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		month, year := monthYearQuery(c)

		expenses, err := database.ListExpenses(c.Request.Context(), pool, userID, month, year, c.Query("category"))
		if err != nil {
			log.Printf("ошибка получения расходов: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "expenses": expenses})
	}
}

func CreateExpense(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req expenseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		expense := &models.Expense{
			UserID:      userID,
			Category:    req.Category,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        req.Date,
		}
		if err := database.CreateExpense(c.Request.Context(), pool, expense); err != nil {
			log.Printf("ошибка создания расхода: %v", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":   true,
			"message":   "Расход добавлен",
			"expenseId": expense.ID,
		})
	}
}

// UpdateExpense сначала перечитывает строку по (id, владелец):
// чужой или несуществующий расход — 404.
func UpdateExpense(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req expenseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if msg := req.validate(); msg != "" {
			fail(c, http.StatusBadRequest, msg)
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		if _, err := database.GetExpenseForUser(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Расход не найден")
				return
			}
			log.Printf("ошибка проверки расхода: %v", err)
			serverError(c)
			return
		}

		expense := &models.Expense{
			ID:          id,
			UserID:      userID,
			Category:    req.Category,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        req.Date,
		}
		if err := database.UpdateExpense(c.Request.Context(), pool, expense); err != nil {
			log.Printf("ошибка обновления расхода: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Расход обновлён"})
	}
}

func DeleteExpense(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		userID, _ := middleware.CurrentUserID(c)

		if err := database.DeleteExpense(c.Request.Context(), pool, id, userID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail(c, http.StatusNotFound, "Расход не найден")
				return
			}
			log.Printf("ошибка удаления расхода: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Расход удалён"})
	}
}
