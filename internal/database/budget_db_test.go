package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/mybudget/internal/database"
	"github.com/valeriaulyamaeva/mybudget/models"
)

func TestCreateBudgetDuplicate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	userID := createTestUser(t, pool, "user")

	budget := &models.Budget{
		UserID:      userID,
		Category:    "Продукты",
		LimitAmount: decimal.RequireFromString("10000.00"),
		Month:       8,
		Year:        2026,
	}
	if err := database.CreateBudget(ctx, pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	dup := &models.Budget{
		UserID:      userID,
		Category:    "Продукты",
		LimitAmount: decimal.RequireFromString("5000.00"),
		Month:       8,
		Year:        2026,
	}
	if err := database.CreateBudget(ctx, pool, dup); !errors.Is(err, database.ErrDuplicateBudget) {
		t.Fatalf("ожидали ErrDuplicateBudget, получили: %v", err)
	}

	// Другой месяц — уже не дубликат.
	other := &models.Budget{
		UserID:      userID,
		Category:    "Продукты",
		LimitAmount: decimal.RequireFromString("5000.00"),
		Month:       9,
		Year:        2026,
	}
	if err := database.CreateBudget(ctx, pool, other); err != nil {
		t.Errorf("бюджет на другой месяц не создался: %v", err)
	}
}

// У разных пользователей одинаковая тройка (категория, месяц, год) допустима.
func TestBudgetUniquePerUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	firstID := createTestUser(t, pool, "user")
	secondID := createTestUser(t, pool, "user")

	for _, uid := range []int{firstID, secondID} {
		b := &models.Budget{
			UserID:      uid,
			Category:    "Жильё",
			LimitAmount: decimal.RequireFromString("20000.00"),
			Month:       8,
			Year:        2026,
		}
		if err := database.CreateBudget(ctx, pool, b); err != nil {
			t.Fatalf("бюджет пользователя %d не создался: %v", uid, err)
		}
	}
}

func TestBudgetOwnership(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	ownerID := createTestUser(t, pool, "user")
	strangerID := createTestUser(t, pool, "user")

	budget := &models.Budget{
		UserID:      ownerID,
		Category:    "Развлечения",
		LimitAmount: decimal.RequireFromString("3000.00"),
		Month:       8,
		Year:        2026,
	}
	if err := database.CreateBudget(ctx, pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	if _, err := database.GetBudgetForUser(ctx, pool, budget.ID, strangerID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("чтение чужого бюджета: ожидали ErrNotFound, получили %v", err)
	}
	if err := database.DeleteBudget(ctx, pool, budget.ID, strangerID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужого бюджета: ожидали ErrNotFound, получили %v", err)
	}
}
