package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
)

// reportPeriod — month/year из запроса, по умолчанию текущие.
func reportPeriod(c *gin.Context) (month, year int) {
	month, year = monthYearQuery(c)
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func SpendingSummary(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		month, year := reportPeriod(c)

		summary, err := database.GetSpendingSummary(c.Request.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ошибка сводки расходов: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
	}
}

func BudgetAnalysis(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		month, year := reportPeriod(c)

		analysis, err := database.GetBudgetAnalysis(c.Request.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ошибка анализа бюджета: %v", err)
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "budgetAnalysis": analysis})
	}
}
