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

// CreateRecurringBill добавляет шаблон регулярного счета
func CreateRecurringBill(pool *pgxpool.Pool, bill *models.RecurringBill) error {
	if bill.DueDay < 1 || bill.DueDay > 31 {
		return fmt.Errorf("некорректный день платежа: %d", bill.DueDay)
	}
	if bill.Amount >= 0 {
		return fmt.Errorf("сумма счета должна быть отрицательной")
	}

	query := `
		INSERT INTO recurring_bills (user_id, name, amount, category, due_day, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		bill.UserID, bill.Name, bill.Amount, bill.Category, bill.DueDay, bill.Avatar).
		Scan(&bill.ID, &bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении счета: %v", err)
	}
	return nil
}

func GetRecurringBillByID(pool *pgxpool.Pool, billID, userID int) (*models.RecurringBill, error) {
	query := `
		SELECT id, user_id, name, amount, category, due_day, avatar, created_at
		FROM recurring_bills
		WHERE id = $1 AND user_id = $2`

	bill := &models.RecurringBill{}
	err := pool.QueryRow(context.Background(), query, billID, userID).Scan(
		&bill.ID, &bill.UserID, &bill.Name, &bill.Amount, &bill.Category, &bill.DueDay, &bill.Avatar, &bill.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении счета: %v", err)
	}
	return bill, nil
}

func GetRecurringBillsByUserID(pool *pgxpool.Pool, userID int) ([]models.RecurringBill, error) {
	query := `
		SELECT id, user_id, name, amount, category, due_day, avatar, created_at
		FROM recurring_bills
		WHERE user_id = $1
		ORDER BY due_day, name`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения счетов: %v", err)
	}
	defer rows.Close()

	var bills []models.RecurringBill
	for rows.Next() {
		var bill models.RecurringBill
		if err := rows.Scan(&bill.ID, &bill.UserID, &bill.Name, &bill.Amount, &bill.Category, &bill.DueDay, &bill.Avatar, &bill.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

// paidBillNames — имена счетов, по которым в текущем месяце уже есть
// реальная расходная транзакция. Единственный источник истины для статуса "paid"
func paidBillNames(pool *pgxpool.Pool, userID int) (map[string]bool, error) {
	query := `
		SELECT DISTINCT name
		FROM transactions
		WHERE user_id = $1 AND amount < 0 AND is_template = FALSE
		AND DATE_TRUNC('month', transaction_date AT TIME ZONE 'UTC') = DATE_TRUNC('month', NOW() AT TIME ZONE 'UTC')`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска оплаченных счетов: %v", err)
	}
	defer rows.Close()

	paid := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		paid[name] = true
	}
	return paid, nil
}

// GetRecurringBillsWithStatus возвращает счета с вычисленными статусами и сводкой
func GetRecurringBillsWithStatus(pool *pgxpool.Pool, userID int) ([]models.RecurringBillWithStatus, *models.RecurringBillsSummary, error) {
	bills, err := GetRecurringBillsByUserID(pool, userID)
	if err != nil {
		return nil, nil, err
	}
	paid, err := paidBillNames(pool, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	result := make([]models.RecurringBillWithStatus, 0, len(bills))
	summary := &models.RecurringBillsSummary{}
	for _, bill := range bills {
		status := bill.Status(paid[bill.Name], now)
		result = append(result, models.RecurringBillWithStatus{RecurringBill: bill, Status: status})

		amount := -bill.Amount // В сводке суммы показываются положительными
		summary.Total++
		summary.TotalAmount += amount
		switch status {
		case models.BillStatusPaid:
			summary.Paid++
			summary.PaidAmount += amount
		case models.BillStatusDueSoon:
			summary.DueSoon++
			summary.DueSoonAmount += amount
		default:
			summary.Upcoming++
			summary.UpcomingAmount += amount
		}
	}
	return result, summary, nil
}

func UpdateRecurringBill(pool *pgxpool.Pool, bill *models.RecurringBill) error {
	if bill.DueDay < 1 || bill.DueDay > 31 {
		return fmt.Errorf("некорректный день платежа: %d", bill.DueDay)
	}
	if bill.Amount >= 0 {
		return fmt.Errorf("сумма счета должна быть отрицательной")
	}

	query := `
		UPDATE recurring_bills
		SET name = $1, amount = $2, category = $3, due_day = $4, avatar = $5
		WHERE id = $6 AND user_id = $7`
	result, err := pool.Exec(context.Background(), query,
		bill.Name, bill.Amount, bill.Category, bill.DueDay, bill.Avatar, bill.ID, bill.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления счета: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteRecurringBill(pool *pgxpool.Pool, billID, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM recurring_bills WHERE id = $1 AND user_id = $2`, billID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления счета: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PayRecurringBill создает реальную транзакцию по счету. Повторная оплата
// в том же месяце отклоняется
func PayRecurringBill(pool *pgxpool.Pool, billID, userID int) (*models.Transaction, error) {
	bill, err := GetRecurringBillByID(pool, billID, userID)
	if err != nil {
		return nil, err
	}

	tx, err := pool.Begin(context.Background())
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия транзакции БД: %v", err)
	}
	defer tx.Rollback(context.Background())

	// Блокировка строки пользователя сериализует параллельные оплаты:
	// вторая дождется коммита первой и увидит уже созданный платеж
	var balance float64
	err = tx.QueryRow(context.Background(),
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения баланса: %v", err)
	}

	var alreadyPaid bool
	err = tx.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE user_id = $1 AND name = $2 AND amount < 0 AND is_template = FALSE
			AND DATE_TRUNC('month', transaction_date AT TIME ZONE 'UTC') = DATE_TRUNC('month', NOW() AT TIME ZONE 'UTC')
		)`, userID, bill.Name).Scan(&alreadyPaid)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки оплаты счета: %v", err)
	}
	if alreadyPaid {
		return nil, ErrAlreadyPaid
	}

	payment := &models.Transaction{
		UserID:    userID,
		Name:      bill.Name,
		Category:  bill.Category,
		Amount:    bill.Amount,
		Date:      time.Now().UTC(),
		Recurring: true,
		Avatar:    bill.Avatar,
	}
	err = tx.QueryRow(context.Background(), `
		INSERT INTO transactions (user_id, name, category, amount, transaction_date, recurring, is_template, avatar)
		VALUES ($1, $2, $3, $4, $5, TRUE, FALSE, $6)
		RETURNING id, created_at`,
		payment.UserID, payment.Name, payment.Category, payment.Amount, payment.Date, payment.Avatar).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания платежа по счету: %v", err)
	}

	// Платеж датирован текущим месяцем, значит всегда меняет баланс
	if err := adjustBalance(tx, userID, payment.Amount); err != nil {
		return nil, err
	}
	if err := tx.Commit(context.Background()); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции БД: %v", err)
	}
	return payment, nil
}
