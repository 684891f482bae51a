package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/models"
	"github.com/shopspring/decimal"
)

// CreatePot добавляет новую копилку
func CreatePot(pool *pgxpool.Pool, pot *models.Pot) error {
	query := `
		INSERT INTO pots (user_id, name, target, total, theme)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		pot.UserID, pot.Name, pot.Target, pot.Total, pot.Theme).
		Scan(&pot.ID, &pot.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка при создании копилки: %v", err)
	}
	return nil
}

func GetPotByID(pool *pgxpool.Pool, potID, userID int) (*models.Pot, error) {
	query := `SELECT id, user_id, name, target, total, theme, created_at FROM pots WHERE id = $1 AND user_id = $2`
	pot := &models.Pot{}
	err := pool.QueryRow(context.Background(), query, potID, userID).Scan(
		&pot.ID, &pot.UserID, &pot.Name, &pot.Target, &pot.Total, &pot.Theme, &pot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении копилки: %v", err)
	}
	return pot, nil
}

func GetPotsByUserID(pool *pgxpool.Pool, userID int) ([]models.Pot, error) {
	query := `SELECT id, user_id, name, target, total, theme, created_at FROM pots WHERE user_id = $1 ORDER BY created_at`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении копилок: %v", err)
	}
	defer rows.Close()

	var pots []models.Pot
	for rows.Next() {
		var pot models.Pot
		if err := rows.Scan(&pot.ID, &pot.UserID, &pot.Name, &pot.Target, &pot.Total, &pot.Theme, &pot.CreatedAt); err != nil {
			return nil, err
		}
		pots = append(pots, pot)
	}
	return pots, nil
}

// UpdatePot меняет имя, цель и тему; total меняется только переводами
func UpdatePot(pool *pgxpool.Pool, pot *models.Pot) error {
	query := `
		UPDATE pots
		SET name = $1, target = $2, theme = $3
		WHERE id = $4 AND user_id = $5`
	result, err := pool.Exec(context.Background(), query,
		pot.Name, pot.Target, pot.Theme, pot.ID, pot.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка обновления копилки: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DepositToPot переводит сумму с баланса в копилку. Баланс и копилка
// меняются в одной транзакции БД, строка пользователя блокируется,
// чтобы параллельные переводы не прошли одну и ту же проверку
func DepositToPot(pool *pgxpool.Pool, userID, potID int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("сумма перевода должна быть положительной")
	}

	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	var balance decimal.Decimal
	err = tx.QueryRow(context.Background(),
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка получения баланса: %v", err)
	}
	if balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	result, err := tx.Exec(context.Background(),
		`UPDATE pots SET total = total + $1 WHERE id = $2 AND user_id = $3`, amount, potID, userID)
	if err != nil {
		return fmt.Errorf("ошибка пополнения копилки: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(context.Background(),
		`UPDATE users SET balance = balance - $1 WHERE id = $2`, amount, userID)
	if err != nil {
		return fmt.Errorf("ошибка обновления баланса: %v", err)
	}
	return tx.Commit(context.Background())
}

// WithdrawFromPot возвращает сумму из копилки на баланс. Порядок блокировок
// во всех переводах одинаковый: сначала пользователь, потом копилка
func WithdrawFromPot(pool *pgxpool.Pool, userID, potID int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("сумма перевода должна быть положительной")
	}

	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	var balance decimal.Decimal
	err = tx.QueryRow(context.Background(),
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка получения баланса: %v", err)
	}

	var total decimal.Decimal
	err = tx.QueryRow(context.Background(),
		`SELECT total FROM pots WHERE id = $1 AND user_id = $2 FOR UPDATE`, potID, userID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при получении копилки: %v", err)
	}
	if total.LessThan(amount) {
		return ErrInsufficientPotBalance
	}

	_, err = tx.Exec(context.Background(),
		`UPDATE pots SET total = total - $1 WHERE id = $2`, amount, potID)
	if err != nil {
		return fmt.Errorf("ошибка списания из копилки: %v", err)
	}
	_, err = tx.Exec(context.Background(),
		`UPDATE users SET balance = balance + $1 WHERE id = $2`, amount, userID)
	if err != nil {
		return fmt.Errorf("ошибка обновления баланса: %v", err)
	}
	return tx.Commit(context.Background())
}

// DeletePot удаляет копилку, предварительно вернув весь остаток на баланс
func DeletePot(pool *pgxpool.Pool, potID, userID int) error {
	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	var balance decimal.Decimal
	err = tx.QueryRow(context.Background(),
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка получения баланса: %v", err)
	}

	var total decimal.Decimal
	err = tx.QueryRow(context.Background(),
		`SELECT total FROM pots WHERE id = $1 AND user_id = $2 FOR UPDATE`, potID, userID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при получении копилки: %v", err)
	}

	if !total.IsZero() {
		_, err = tx.Exec(context.Background(),
			`UPDATE users SET balance = balance + $1 WHERE id = $2`, total, userID)
		if err != nil {
			return fmt.Errorf("ошибка возврата средств из копилки: %v", err)
		}
	}

	_, err = tx.Exec(context.Background(), `DELETE FROM pots WHERE id = $1`, potID)
	if err != nil {
		return fmt.Errorf("ошибка удаления копилки: %v", err)
	}
	return tx.Commit(context.Background())
}
