package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReconcileBalance сбрасывает баланс в ноль у пользователя, у которого нет
// ни одной транзакции и пустые копилки, но баланс ненулевой. Такое состояние
// означает дрейф данных, а не реальные средства. Возвращает true, если
// баланс был сброшен
func ReconcileBalance(pool *pgxpool.Pool, userID int) (bool, error) {
	result, err := pool.Exec(context.Background(), `
		UPDATE users SET balance = 0
		WHERE id = $1 AND balance <> 0
		AND NOT EXISTS (SELECT 1 FROM transactions WHERE user_id = $1)
		AND COALESCE((SELECT SUM(total) FROM pots WHERE user_id = $1), 0) = 0`,
		userID)
	if err != nil {
		return false, fmt.Errorf("ошибка сверки баланса: %v", err)
	}
	return result.RowsAffected() > 0, nil
}

// ReconcileAllBalances проходит по всем пользователям; запускается cron-задачей
func ReconcileAllBalances(pool *pgxpool.Pool) error {
	rows, err := pool.Query(context.Background(), `SELECT id FROM users`)
	if err != nil {
		return fmt.Errorf("ошибка при получении пользователей: %v", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()

	for _, id := range ids {
		reset, err := ReconcileBalance(pool, id)
		if err != nil {
			log.Printf("Ошибка сверки баланса пользователя %d: %v", id, err)
			continue
		}
		if reset {
			log.Printf("Баланс пользователя %d сброшен в ноль после сверки", id)
		}
	}
	return nil
}
