package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/utils"
)

// Заполняет базу демонстрационными данными: админ, десяток пользователей,
// их расходы, доходы и бюджеты текущего месяца.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	ctx := context.Background()

	pool, err := database.ConnectDB(ctx)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(ctx, pool); err != nil {
		log.Fatalf("Ошибка инициализации схемы: %v", err)
	}

	if _, err := database.RegisterUser(ctx, pool, "Администратор", "admin@mybudget.local", "admin123", "admin"); err != nil {
		log.Printf("Админ не создан (возможно, уже существует): %v", err)
	}

	userIDs := utils.GenerateTestUsers(ctx, pool, 10)
	utils.GenerateTestExpenses(ctx, pool, userIDs, 200)
	utils.GenerateTestIncome(ctx, pool, userIDs, 60)
	utils.GenerateTestBudgets(ctx, pool, userIDs)

	log.Printf("Готово: пользователей %d, расходов 200, доходов 60", len(userIDs))
}
