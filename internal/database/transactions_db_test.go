package database_test

import (
	"testing"
	"time"

	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

func TestCreateAndDeleteTransactionAdjustsBalance(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:   user.ID,
		Name:     "Grocery Store",
		Category: "Groceries",
		Amount:   -50,
		Date:     time.Now().UTC(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if balance := userBalance(t, pool, user.ID); balance != -50 {
		t.Errorf("баланс после расхода: получили %v, хотели -50", balance)
	}

	if err := database.DeleteTransaction(pool, transaction.ID, user.ID); err != nil {
		t.Fatalf("ошибка удаления транзакции: %v", err)
	}

	if balance := userBalance(t, pool, user.ID); balance != 0 {
		t.Errorf("баланс после удаления расхода: получили %v, хотели 0", balance)
	}
}

func TestTransactionOutsideCurrentMonthDoesNotAffectBalance(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:   user.ID,
		Name:     "Old Purchase",
		Category: "Shopping",
		Amount:   -80,
		Date:     time.Now().UTC().AddDate(0, 0, -65),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if balance := userBalance(t, pool, user.ID); balance != 0 {
		t.Errorf("транзакция прошлого месяца изменила баланс: получили %v, хотели 0", balance)
	}
}

func TestTemplateTransactionDoesNotAffectBalance(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:     user.ID,
		Name:       "Streaming Service",
		Category:   "Bills",
		Amount:     -15,
		Date:       time.Now().UTC(),
		IsTemplate: true,
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if balance := userBalance(t, pool, user.ID); balance != 0 {
		t.Errorf("шаблонная транзакция изменила баланс: получили %v, хотели 0", balance)
	}
}

func TestUpdateTransactionMovesDateAcrossMonthBoundary(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:   user.ID,
		Name:     "Cinema",
		Category: "Entertainment",
		Amount:   -30,
		Date:     time.Now().UTC(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}
	if balance := userBalance(t, pool, user.ID); balance != -30 {
		t.Fatalf("баланс после расхода: получили %v, хотели -30", balance)
	}

	// Переносим дату в прошлый месяц: вклад в баланс должен откатиться.
	// 40 дней назад — это гарантированно другой месяц при любой дате запуска
	transaction.Date = time.Now().UTC().AddDate(0, 0, -40)
	if err := database.UpdateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка обновления транзакции: %v", err)
	}
	if balance := userBalance(t, pool, user.ID); balance != 0 {
		t.Errorf("баланс после переноса даты из месяца: получили %v, хотели 0", balance)
	}

	// И обратно в текущий месяц
	transaction.Date = time.Now().UTC()
	if err := database.UpdateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка обновления транзакции: %v", err)
	}
	if balance := userBalance(t, pool, user.ID); balance != -30 {
		t.Errorf("баланс после возврата даты в месяц: получили %v, хотели -30", balance)
	}
}

func TestGetTransactionsFilterAndSort(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	names := []string{"Alpha Market", "Beta Cafe", "Gamma Store"}
	for i, name := range names {
		transaction := &models.Transaction{
			UserID:   user.ID,
			Name:     name,
			Category: "Groceries",
			Amount:   float64(-10 * (i + 1)),
			Date:     time.Now().UTC().AddDate(0, 0, -i),
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	list, err := database.GetTransactionsByUserID(pool, user.ID, database.TransactionFilter{Sort: "a-z"})
	if err != nil {
		t.Fatalf("ошибка получения транзакций: %v", err)
	}
	if len(list) != 3 || list[0].Name != "Alpha Market" {
		t.Errorf("сортировка a-z не сработала: %+v", list)
	}

	list, err = database.GetTransactionsByUserID(pool, user.ID, database.TransactionFilter{Search: "beta"})
	if err != nil {
		t.Fatalf("ошибка поиска транзакций: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Beta Cafe" {
		t.Errorf("поиск по имени не сработал: %+v", list)
	}
}
