package utils

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/models"
)

// Генерация демонстрационных данных. Пароль у всех тестовых
// пользователей одинаковый, чтобы в них можно было войти.

const demoPassword = "password123"

var expenseCategories = []string{"Продукты", "Транспорт", "Жильё", "Развлечения", "Здоровье", "Одежда"}

var incomeSources = []string{"Зарплата", "Фриланс", "Подарок", "Проценты по вкладу"}

// GenerateTestUsers создаёт numUsers пользователей и возвращает их id.
func GenerateTestUsers(ctx context.Context, pool *pgxpool.Pool, numUsers int) []int {
	ids := make([]int, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		id, err := database.RegisterUser(ctx, pool, gofakeit.Name(), gofakeit.Email(), demoPassword, "user")
		if err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

// GenerateTestExpenses — случайные расходы за последние 30 дней.
func GenerateTestExpenses(ctx context.Context, pool *pgxpool.Pool, userIDs []int, numExpenses int) {
	for i := 0; i < numExpenses; i++ {
		e := &models.Expense{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Category:    expenseCategories[rand.Intn(len(expenseCategories))],
			Amount:      decimal.NewFromFloat(gofakeit.Price(10, 5000)).Round(2),
			Description: gofakeit.Sentence(4),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(30)).Format("2006-01-02"),
		}
		if err := database.CreateExpense(ctx, pool, e); err != nil {
			log.Fatalf("ошибка при добавлении расхода: %v", err)
		}
	}
}

// GenerateTestIncome — случайные доходы за последние 30 дней.
func GenerateTestIncome(ctx context.Context, pool *pgxpool.Pool, userIDs []int, numIncome int) {
	for i := 0; i < numIncome; i++ {
		in := &models.Income{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Source:      incomeSources[rand.Intn(len(incomeSources))],
			Amount:      decimal.NewFromFloat(gofakeit.Price(1000, 100000)).Round(2),
			Description: gofakeit.Sentence(4),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(30)).Format("2006-01-02"),
		}
		if err := database.CreateIncome(ctx, pool, in); err != nil {
			log.Fatalf("ошибка при добавлении дохода: %v", err)
		}
	}
}

// GenerateTestBudgets заводит каждому пользователю по лимиту на несколько
// категорий текущего месяца. Дубликаты по (категория, месяц, год) пропускаются.
func GenerateTestBudgets(ctx context.Context, pool *pgxpool.Pool, userIDs []int) {
	now := time.Now()
	for _, uid := range userIDs {
		for _, category := range expenseCategories[:3] {
			b := &models.Budget{
				UserID:      uid,
				Category:    category,
				LimitAmount: decimal.NewFromFloat(gofakeit.Price(5000, 30000)).Round(2),
				Month:       int(now.Month()),
				Year:        now.Year(),
			}
			err := database.CreateBudget(ctx, pool, b)
			if err != nil && !errors.Is(err, database.ErrDuplicateBudget) {
				log.Fatalf("ошибка при добавлении бюджета: %v", err)
			}
		}
	}
}
