package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/utils"
)

// Наполняет базу демо-данными: пользователь, транзакции за три месяца,
// бюджеты, копилки и регулярные счета
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения: %v", err)
	}

	if err := database.RunMigrations(database.ConnString()); err != nil {
		log.Fatalf("Ошибка миграции схемы: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	user := utils.GenerateDemoUser(pool)
	utils.GenerateDemoTransactions(pool, user.ID, 15)
	utils.GenerateDemoBudgets(pool, user.ID)
	utils.GenerateDemoPots(pool, user.ID)
	utils.GenerateDemoRecurringBills(pool, user.ID, 5)

	log.Println("Генерация демо-данных завершена успешно.")
}
