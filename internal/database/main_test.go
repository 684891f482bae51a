package database_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

// testPool подключается к БД из .env; без доступной базы
// интеграционные тесты пропускаются
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()
	pool, err := database.ConnectDB()
	if err != nil {
		t.Skipf("БД недоступна, пропускаем интеграционный тест: %v", err)
	}
	if err := database.RunMigrations(database.ConnString()); err != nil {
		pool.Close()
		t.Fatalf("ошибка миграции схемы: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// createTestUser регистрирует свежего пользователя и удаляет его после теста
func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		Email:    fmt.Sprintf("test.%d@example.com", time.Now().UnixNano()),
		Password: "secret123",
		Name:     "Test User",
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() {
		_ = database.DeleteUser(pool, user.ID)
	})
	return user
}

func userBalance(t *testing.T, pool *pgxpool.Pool, userID int) float64 {
	t.Helper()
	balance, err := database.GetUserBalance(pool, userID)
	if err != nil {
		t.Fatalf("ошибка получения баланса: %v", err)
	}
	return balance
}
