package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/models"
)

func TestCreateExpense(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	expense := &models.Expense{
		UserID:      userID,
		Category:    "Продукты",
		Amount:      decimal.RequireFromString("1250.50"),
		Description: "Закупка на неделю",
		Date:        "2026-08-15",
	}
	if err := database.CreateExpense(ctx, pool, expense); err != nil {
		t.Fatalf("ошибка создания расхода: %v", err)
	}
	if expense.ID == 0 {
		t.Fatal("id расхода не заполнен")
	}

	got, err := database.GetExpenseForUser(ctx, pool, expense.ID, userID)
	if err != nil {
		t.Fatalf("ошибка получения расхода: %v", err)
	}
	if got.Date != "2026-08-15" {
		t.Errorf("дата исказилась при чтении: %s", got.Date)
	}
	if !got.Amount.Equal(expense.Amount) {
		t.Errorf("сумма не совпадает: получили %s, хотели %s", got.Amount, expense.Amount)
	}
}

// Чужой расход недоступен ни на чтение, ни на изменение, ни на удаление —
// во всех случаях ErrNotFound, без различия «нет» и «не ваш».
func TestExpenseOwnership(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	ownerID := createTestUser(t, pool, "user")
	strangerID := createTestUser(t, pool, "user")

	expense := &models.Expense{
		UserID:   ownerID,
		Category: "Транспорт",
		Amount:   decimal.RequireFromString("300.00"),
		Date:     "2026-08-01",
	}
	if err := database.CreateExpense(ctx, pool, expense); err != nil {
		t.Fatalf("ошибка создания расхода: %v", err)
	}

	if _, err := database.GetExpenseForUser(ctx, pool, expense.ID, strangerID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("чтение чужого расхода: ожидали ErrNotFound, получили %v", err)
	}

	hijacked := *expense
	hijacked.UserID = strangerID
	hijacked.Description = "перехвачено"
	if err := database.UpdateExpense(ctx, pool, &hijacked); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("обновление чужого расхода: ожидали ErrNotFound, получили %v", err)
	}

	if err := database.DeleteExpense(ctx, pool, expense.ID, strangerID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужого расхода: ожидали ErrNotFound, получили %v", err)
	}

	// Владельцу всё по-прежнему доступно.
	if _, err := database.GetExpenseForUser(ctx, pool, expense.ID, ownerID); err != nil {
		t.Errorf("владелец потерял доступ к своему расходу: %v", err)
	}
	if err := database.DeleteExpense(ctx, pool, expense.ID, ownerID); err != nil {
		t.Errorf("владелец не смог удалить свой расход: %v", err)
	}
}

func TestListExpensesFilters(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	for _, e := range []*models.Expense{
		{UserID: userID, Category: "Продукты", Amount: decimal.RequireFromString("100.00"), Date: "2026-07-10"},
		{UserID: userID, Category: "Продукты", Amount: decimal.RequireFromString("200.00"), Date: "2026-08-10"},
		{UserID: userID, Category: "Транспорт", Amount: decimal.RequireFromString("50.00"), Date: "2026-08-11"},
	} {
		if err := database.CreateExpense(ctx, pool, e); err != nil {
			t.Fatalf("ошибка создания расхода: %v", err)
		}
	}

	august, err := database.ListExpenses(ctx, pool, userID, 8, 2026, "")
	if err != nil {
		t.Fatalf("ошибка получения расходов: %v", err)
	}
	if len(august) != 2 {
		t.Errorf("фильтр по месяцу: получили %d расходов, хотели 2", len(august))
	}

	food, err := database.ListExpenses(ctx, pool, userID, 8, 2026, "Продукты")
	if err != nil {
		t.Fatalf("ошибка получения расходов: %v", err)
	}
	if len(food) != 1 {
		t.Errorf("фильтр по категории: получили %d расходов, хотели 1", len(food))
	}
}
