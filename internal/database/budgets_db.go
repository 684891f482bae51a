package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/models"
)

// CreateBudget добавляет бюджет; категория и тема уникальны в рамках пользователя
func CreateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, maximum, theme)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		budget.UserID, budget.Category, budget.Maximum, budget.Theme).
		Scan(&budget.ID, &budget.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка при создании бюджета: %v", err)
	}
	return nil
}

func GetBudgetByID(pool *pgxpool.Pool, budgetID, userID int) (*models.Budget, error) {
	query := `SELECT id, user_id, category, maximum, theme, created_at FROM budgets WHERE id = $1 AND user_id = $2`
	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query, budgetID, userID).Scan(
		&budget.ID, &budget.UserID, &budget.Category, &budget.Maximum, &budget.Theme, &budget.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении бюджета: %v", err)
	}
	return budget, nil
}

// budgetSpent считает расходы по категории за текущий месяц:
// только реальные (не шаблонные) отрицательные транзакции.
// Границы месяца считаются по UTC, как и при ведении баланса
func budgetSpent(pool *pgxpool.Pool, userID int, category string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(-amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category = $2 AND amount < 0 AND is_template = FALSE
		AND DATE_TRUNC('month', transaction_date AT TIME ZONE 'UTC') = DATE_TRUNC('month', NOW() AT TIME ZONE 'UTC')`
	var spent float64
	if err := pool.QueryRow(context.Background(), query, userID, category).Scan(&spent); err != nil {
		return 0, fmt.Errorf("ошибка при подсчете расходов бюджета: %v", err)
	}
	return spent, nil
}

// latestBudgetTransactions — три последних расхода категории, месяц не важен
func latestBudgetTransactions(pool *pgxpool.Pool, userID int, category string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, name, category, amount, transaction_date, recurring, is_template, avatar, created_at
		FROM transactions
		WHERE user_id = $1 AND category = $2 AND amount < 0 AND is_template = FALSE
		ORDER BY transaction_date DESC
		LIMIT 3`
	rows, err := pool.Query(context.Background(), query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения транзакций бюджета: %v", err)
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

// GetBudgetsByUserID возвращает бюджеты с вычисленными spent/remaining
func GetBudgetsByUserID(pool *pgxpool.Pool, userID int) ([]models.BudgetSummary, error) {
	query := `SELECT id, user_id, category, maximum, theme, created_at FROM budgets WHERE user_id = $1 ORDER BY created_at`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бюджетов: %v", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Maximum, &b.Theme, &b.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	rows.Close()

	summaries := make([]models.BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		spent, err := budgetSpent(pool, userID, b.Category)
		if err != nil {
			return nil, err
		}
		latest, err := latestBudgetTransactions(pool, userID, b.Category)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.BudgetSummary{
			Budget:             b,
			Spent:              spent,
			Remaining:          b.Maximum - spent,
			LatestTransactions: latest,
		})
	}
	return summaries, nil
}

func UpdateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		UPDATE budgets
		SET category = $1, maximum = $2, theme = $3
		WHERE id = $4 AND user_id = $5`
	result, err := pool.Exec(context.Background(), query,
		budget.Category, budget.Maximum, budget.Theme, budget.ID, budget.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка обновления бюджета: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteBudget(pool *pgxpool.Pool, budgetID, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении бюджета: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
