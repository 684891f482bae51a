package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/internal/middleware/ratelimit"
	"github.com/raiyan37/finance-tracker/internal/routes"
	"github.com/robfig/cron/v3"
)

// ScheduleBalanceReconciliation еженощно сверяет балансы всех пользователей
func ScheduleBalanceReconciliation(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		if err := database.ReconcileAllBalances(pool); err != nil {
			log.Printf("Ошибка ночной сверки балансов: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи сверки балансов: %v", err)
	}
	c.Start()
}

func CORSMiddleware() gin.HandlerFunc {
	clientURL := os.Getenv("CLIENT_URL")
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (origin == clientURL || origin == "http://localhost:3000") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения: %v", err)
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("Не задан JWT_SECRET")
	}

	if err := database.RunMigrations(database.ConnString()); err != nil {
		log.Fatalf("Ошибка миграции схемы: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	r := gin.Default()
	r.Use(CORSMiddleware())

	apiLimiter := ratelimit.NewLimiter(300)
	authLimiter := ratelimit.NewLimiter(20)
	defer apiLimiter.Stop()
	defer authLimiter.Stop()

	routes.RegisterRoutes(r, pool, apiLimiter, authLimiter)

	ScheduleBalanceReconciliation(pool)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Сервер запущен на порту %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
