package models

import "time"

type Budget struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Maximum   float64   `json:"maximum" db:"maximum"`
	Theme     string    `json:"theme" db:"theme"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BudgetSummary — бюджет вместе с потраченной за текущий месяц суммой
type BudgetSummary struct {
	Budget
	Spent              float64       `json:"spent"`
	Remaining          float64       `json:"remaining"` // Может быть отрицательным при перерасходе
	LatestTransactions []Transaction `json:"latest_transactions"`
}
