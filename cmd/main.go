package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/internal/routes"
)

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

	// Ежедневная чистка просроченных сессий.
	c := cron.New()
	_, err = c.AddFunc("@daily", func() {
		n, err := database.DeleteExpiredSessions(context.Background(), pool)
		if err != nil {
			log.Printf("Ошибка очистки сессий: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Удалено просроченных сессий: %d", n)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка планировщика: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := routes.SetupRouter(pool)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Сервер запущен на порту %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
