package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/models"
)

// TransactionFilter — параметры списка транзакций
type TransactionFilter struct {
	Category string
	Search   string
	Sort     string // latest | oldest | a-z | z-a | highest | lowest
	Page     int
	Limit    int
}

// adjustBalance меняет баланс пользователя внутри открытой транзакции БД
func adjustBalance(tx pgx.Tx, userID int, delta float64) error {
	result, err := tx.Exec(context.Background(),
		`UPDATE users SET balance = balance + $1 WHERE id = $2`, delta, userID)
	if err != nil {
		return fmt.Errorf("ошибка обновления баланса: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateTransaction добавляет транзакцию и применяет ее к балансу,
// если она не шаблонная и датирована текущим месяцем
func CreateTransaction(pool *pgxpool.Pool, t *models.Transaction) error {
	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	query := `
		INSERT INTO transactions (user_id, name, category, amount, transaction_date, recurring, is_template, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err = tx.QueryRow(context.Background(), query,
		t.UserID, t.Name, t.Category, t.Amount, t.Date, t.Recurring, t.IsTemplate, t.Avatar).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}

	if t.AffectsBalance(time.Now()) {
		if err := adjustBalance(tx, t.UserID, t.Amount); err != nil {
			return err
		}
	}
	return tx.Commit(context.Background())
}

func GetTransactionByID(pool *pgxpool.Pool, transactionID, userID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, name, category, amount, transaction_date, recurring, is_template, avatar, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	t := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query, transactionID, userID).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Category, &t.Amount, &t.Date, &t.Recurring, &t.IsTemplate, &t.Avatar, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}
	return t, nil
}

// GetTransactionsByUserID возвращает страницу не-шаблонных транзакций пользователя
func GetTransactionsByUserID(pool *pgxpool.Pool, userID int, filter TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, name, category, amount, transaction_date, recurring, is_template, avatar, created_at
		FROM transactions
		WHERE user_id = $1 AND is_template = FALSE`
	args := []interface{}{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	switch filter.Sort {
	case "oldest":
		query += " ORDER BY transaction_date ASC"
	case "a-z":
		query += " ORDER BY name ASC"
	case "z-a":
		query += " ORDER BY name DESC"
	case "highest":
		query += " ORDER BY amount DESC"
	case "lowest":
		query += " ORDER BY amount ASC"
	default: // latest
		query += " ORDER BY transaction_date DESC"
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		args = append(args, filter.Limit, (page-1)*filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения транзакций: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Category, &t.Amount, &t.Date, &t.Recurring, &t.IsTemplate, &t.Avatar, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// UpdateTransaction обновляет транзакцию. Старый вклад в баланс снимается,
// новый применяется: перенос даты в текущий месяц или из него меняет баланс
func UpdateTransaction(pool *pgxpool.Pool, t *models.Transaction) error {
	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	old := models.Transaction{ID: t.ID, UserID: t.UserID}
	err = tx.QueryRow(context.Background(),
		`SELECT amount, transaction_date, is_template FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		t.ID, t.UserID).Scan(&old.Amount, &old.Date, &old.IsTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при получении транзакции: %v", err)
	}

	query := `
		UPDATE transactions
		SET name = $1, category = $2, amount = $3, transaction_date = $4, recurring = $5, is_template = $6, avatar = $7
		WHERE id = $8 AND user_id = $9`
	_, err = tx.Exec(context.Background(), query,
		t.Name, t.Category, t.Amount, t.Date, t.Recurring, t.IsTemplate, t.Avatar, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления транзакции: %v", err)
	}

	now := time.Now()
	delta := 0.0
	if old.AffectsBalance(now) {
		delta -= old.Amount
	}
	if t.AffectsBalance(now) {
		delta += t.Amount
	}
	if delta != 0 {
		if err := adjustBalance(tx, t.UserID, delta); err != nil {
			return err
		}
	}
	return tx.Commit(context.Background())
}

// DeleteTransaction удаляет транзакцию и откатывает ее вклад в баланс
func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	tx, err := pool.Begin(context.Background())
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	old := models.Transaction{ID: transactionID, UserID: userID}
	err = tx.QueryRow(context.Background(),
		`SELECT amount, transaction_date, is_template FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		transactionID, userID).Scan(&old.Amount, &old.Date, &old.IsTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при получении транзакции: %v", err)
	}

	_, err = tx.Exec(context.Background(),
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %v", err)
	}

	if old.AffectsBalance(time.Now()) {
		if err := adjustBalance(tx, userID, -old.Amount); err != nil {
			return err
		}
	}
	return tx.Commit(context.Background())
}
