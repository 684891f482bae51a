package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ConnString собирает строку подключения из переменных окружения.
// DATABASE_URL имеет приоритет над отдельными DB_* переменными.
func ConnString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"), port, os.Getenv("DB_NAME"))
}

func ConnectDB() (*pgxpool.Pool, error) {
	// .env может отсутствовать, если переменные заданы окружением
	_ = godotenv.Load()

	pool, err := pgxpool.New(context.Background(), ConnString())
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("БД недоступна: %v", err)
	}
	return pool, nil
}
