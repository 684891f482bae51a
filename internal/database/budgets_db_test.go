package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

func TestBudgetSpentCountsOnlyCurrentMonthExpenses(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	budget := &models.Budget{UserID: user.ID, Category: "Groceries", Maximum: 200, Theme: "#277C78"}
	if err := database.CreateBudget(pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	now := time.Now().UTC()
	expenses := []models.Transaction{
		{UserID: user.ID, Name: "Market A", Category: "Groceries", Amount: -30, Date: now},
		{UserID: user.ID, Name: "Market B", Category: "Groceries", Amount: -20, Date: now},
		// Не должны попадать в spent:
		{UserID: user.ID, Name: "Old Market", Category: "Groceries", Amount: -50, Date: now.AddDate(0, 0, -40)},
		{UserID: user.ID, Name: "Template", Category: "Groceries", Amount: -40, Date: now, IsTemplate: true},
		{UserID: user.ID, Name: "Refund", Category: "Groceries", Amount: 10, Date: now},
		{UserID: user.ID, Name: "Cinema", Category: "Entertainment", Amount: -25, Date: now},
	}
	for i := range expenses {
		if err := database.CreateTransaction(pool, &expenses[i]); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	summaries, err := database.GetBudgetsByUserID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения бюджетов: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("ожидали один бюджет, получили %d", len(summaries))
	}

	summary := summaries[0]
	if summary.Spent != 50 {
		t.Errorf("spent: получили %v, хотели 50", summary.Spent)
	}
	if summary.Remaining != 150 {
		t.Errorf("remaining: получили %v, хотели 150", summary.Remaining)
	}
	// Последние транзакции категории берутся вне зависимости от месяца
	if len(summary.LatestTransactions) != 3 {
		t.Errorf("ожидали 3 последних транзакции, получили %d", len(summary.LatestTransactions))
	}
}

func TestBudgetSpentUsesUTCMonthBoundary(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	// Отдельный пул с сессионным часовым поясом позади UTC: первые часы
	// месяца по UTC в таком сеансе еще относятся к прошлому месяцу
	cfg, err := pgxpool.ParseConfig(database.ConnString())
	if err != nil {
		t.Fatalf("ошибка разбора строки подключения: %v", err)
	}
	cfg.ConnConfig.RuntimeParams["timezone"] = "America/Anchorage"
	shifted, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	defer shifted.Close()

	budget := &models.Budget{UserID: user.ID, Category: "Transportation", Maximum: 100, Theme: "#3F82B2"}
	if err := database.CreateBudget(pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 3, 0, 0, 0, time.UTC)
	expense := &models.Transaction{
		UserID: user.ID, Name: "Bus Pass", Category: "Transportation", Amount: -25, Date: monthStart,
	}
	if err := database.CreateTransaction(pool, expense); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	summaries, err := database.GetBudgetsByUserID(shifted, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения бюджетов: %v", err)
	}
	if summaries[0].Spent != 25 {
		t.Errorf("spent при сдвинутом часовом поясе сеанса: получили %v, хотели 25", summaries[0].Spent)
	}
}

func TestBudgetRemainingCanGoNegative(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	budget := &models.Budget{UserID: user.ID, Category: "Dining Out", Maximum: 40, Theme: "#F2CDAC"}
	if err := database.CreateBudget(pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	expense := &models.Transaction{
		UserID: user.ID, Name: "Restaurant", Category: "Dining Out", Amount: -90, Date: time.Now().UTC(),
	}
	if err := database.CreateTransaction(pool, expense); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	summaries, err := database.GetBudgetsByUserID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения бюджетов: %v", err)
	}
	if summaries[0].Remaining != -50 {
		t.Errorf("remaining при перерасходе: получили %v, хотели -50", summaries[0].Remaining)
	}
}

func TestGetBudgetByID(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	budget := &models.Budget{UserID: user.ID, Category: "Education", Maximum: 120, Theme: "#597C7C"}
	if err := database.CreateBudget(pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	found, err := database.GetBudgetByID(pool, budget.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения бюджета: %v", err)
	}
	if found.Category != "Education" || found.Maximum != 120 {
		t.Errorf("данные бюджета не совпадают: %+v", found)
	}

	// Чужой или несуществующий бюджет не возвращается
	if _, err := database.GetBudgetByID(pool, budget.ID, user.ID+1); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("ожидали ErrNotFound для чужого бюджета, получили: %v", err)
	}
}

func TestBudgetDuplicateCategoryRejected(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	first := &models.Budget{UserID: user.ID, Category: "Bills", Maximum: 100, Theme: "#277C78"}
	if err := database.CreateBudget(pool, first); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	second := &models.Budget{UserID: user.ID, Category: "Bills", Maximum: 150, Theme: "#626070"}
	if err := database.CreateBudget(pool, second); !errors.Is(err, database.ErrDuplicate) {
		t.Errorf("ожидали ErrDuplicate для повторной категории, получили: %v", err)
	}
}
