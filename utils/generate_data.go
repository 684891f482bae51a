package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

// GenerateDemoUser создает демо-пользователя с известным паролем
func GenerateDemoUser(pool *pgxpool.Pool) *models.User {
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: "demo1234",
		Name:     gofakeit.Name(),
	}
	if err := database.RegisterUser(pool, user); err != nil {
		log.Fatalf("ошибка при добавлении пользователя: %v", err)
	}
	log.Printf("Демо-пользователь: %s / demo1234", user.Email)
	return user
}

// GenerateDemoTransactions генерирует транзакции за последние три месяца:
// зарплата в начале месяца и случайные расходы по категориям
func GenerateDemoTransactions(pool *pgxpool.Pool, userID, perMonth int) {
	now := time.Now().UTC()
	for monthsAgo := 0; monthsAgo < 3; monthsAgo++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthsAgo, 0)

		salary := &models.Transaction{
			UserID:   userID,
			Name:     gofakeit.Company(),
			Category: "General",
			Amount:   gofakeit.Price(2500, 4000),
			Date:     monthStart.AddDate(0, 0, 1),
		}
		if err := database.CreateTransaction(pool, salary); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}

		for i := 0; i < perMonth; i++ {
			t := &models.Transaction{
				UserID:   userID,
				Name:     gofakeit.Company(),
				Category: models.Categories[rand.Intn(len(models.Categories))],
				Amount:   -gofakeit.Price(5, 150),
				Date:     monthStart.AddDate(0, 0, rand.Intn(27)),
			}
			if err := database.CreateTransaction(pool, t); err != nil {
				log.Fatalf("ошибка при добавлении транзакции: %v", err)
			}
		}
	}
}

func GenerateDemoBudgets(pool *pgxpool.Pool, userID int) {
	themes := []string{"#277C78", "#82C9D7", "#F2CDAC", "#626070"}
	categories := []string{"Groceries", "Dining Out", "Entertainment", "Transportation"}
	for i, category := range categories {
		budget := &models.Budget{
			UserID:   userID,
			Category: category,
			Maximum:  gofakeit.Price(50, 500),
			Theme:    themes[i],
		}
		if err := database.CreateBudget(pool, budget); err != nil {
			log.Fatalf("ошибка при добавлении бюджета: %v", err)
		}
	}
}

func GenerateDemoPots(pool *pgxpool.Pool, userID int) {
	themes := []string{"#277C78", "#626070", "#82C9D7"}
	for i := 0; i < len(themes); i++ {
		pot := &models.Pot{
			UserID: userID,
			Name:   gofakeit.BeerName(),
			Target: gofakeit.Price(100, 2000),
			Theme:  themes[i],
		}
		if err := database.CreatePot(pool, pot); err != nil {
			log.Fatalf("ошибка при добавлении копилки: %v", err)
		}
	}
}

func GenerateDemoRecurringBills(pool *pgxpool.Pool, userID, numBills int) {
	for i := 0; i < numBills; i++ {
		bill := &models.RecurringBill{
			UserID:   userID,
			Name:     gofakeit.Company(),
			Amount:   -gofakeit.Price(10, 120),
			Category: "Bills",
			DueDay:   rand.Intn(28) + 1,
		}
		if err := database.CreateRecurringBill(pool, bill); err != nil {
			log.Fatalf("ошибка при добавлении счета: %v", err)
		}
	}
}
