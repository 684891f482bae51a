package models

import "time"

type Transaction struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Category   string    `json:"category" db:"category"`
	Amount     float64   `json:"amount" db:"amount"` // Положительная сумма — доход, отрицательная — расход
	Date       time.Time `json:"date" db:"transaction_date"`
	Recurring  bool      `json:"recurring" db:"recurring"`
	IsTemplate bool      `json:"is_template" db:"is_template"`
	Avatar     string    `json:"avatar" db:"avatar"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SameMonth проверяет, относятся ли две даты к одному календарному месяцу (UTC)
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AffectsBalance проверяет, должна ли транзакция менять баланс пользователя:
// только не-шаблонные транзакции текущего месяца
func (t *Transaction) AffectsBalance(now time.Time) bool {
	return !t.IsTemplate && SameMonth(t.Date, now)
}
