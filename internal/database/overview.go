package database

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/models"
	"golang.org/x/net/context"
)

// GetIncomeExpenseSummary считает доходы и расходы текущего месяца
func GetIncomeExpenseSummary(pool *pgxpool.Pool, userID int) (float64, float64, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1 AND is_template = FALSE
		AND DATE_TRUNC('month', transaction_date AT TIME ZONE 'UTC') = DATE_TRUNC('month', NOW() AT TIME ZONE 'UTC')`
	var income, expenses float64
	err := pool.QueryRow(context.Background(), query, userID).Scan(&income, &expenses)
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка при получении сводки доходов и расходов: %v", err)
	}
	return income, expenses, nil
}

// GetPotsTotal — сумма средств во всех копилках пользователя
func GetPotsTotal(pool *pgxpool.Pool, userID int) (float64, error) {
	var total float64
	err := pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM pots WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете средств в копилках: %v", err)
	}
	return total, nil
}

// GetOverview собирает агрегированные данные для главной страницы
func GetOverview(pool *pgxpool.Pool, userID int) (*models.Overview, error) {
	balance, err := GetUserBalance(pool, userID)
	if err != nil {
		return nil, err
	}

	income, expenses, err := GetIncomeExpenseSummary(pool, userID)
	if err != nil {
		return nil, err
	}

	potsTotal, err := GetPotsTotal(pool, userID)
	if err != nil {
		return nil, err
	}
	pots, err := GetPotsByUserID(pool, userID)
	if err != nil {
		return nil, err
	}
	if len(pots) > 4 {
		pots = pots[:4]
	}

	budgets, err := GetBudgetsByUserID(pool, userID)
	if err != nil {
		return nil, err
	}

	recent, err := GetTransactionsByUserID(pool, userID, TransactionFilter{Limit: 5})
	if err != nil {
		return nil, err
	}

	_, billsSummary, err := GetRecurringBillsWithStatus(pool, userID)
	if err != nil {
		return nil, err
	}

	return &models.Overview{
		Balance:            balance,
		Income:             income,
		Expenses:           expenses,
		Pots:               models.OverviewPots{Total: potsTotal, Pots: pots},
		Budgets:            budgets,
		RecentTransactions: recent,
		RecurringBills:     *billsSummary,
	}, nil
}
