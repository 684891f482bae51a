package models

import "time"

const (
	BillStatusPaid     = "paid"
	BillStatusDueSoon  = "due-soon"
	BillStatusUpcoming = "upcoming"
)

// Окно, в котором неоплаченный счет считается "скоро к оплате"
const billDueSoonDays = 5

type RecurringBill struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Amount    float64   `json:"amount" db:"amount"` // Всегда отрицательная: счет — это расход
	Category  string    `json:"category" db:"category"`
	DueDay    int       `json:"due_day" db:"due_day"` // День месяца 1..31
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DueDateIn возвращает дату платежа в месяце ref; due_day обрезается
// по длине месяца (31-е в феврале превращается в последний день)
func (b *RecurringBill) DueDateIn(ref time.Time) time.Time {
	ref = ref.UTC()
	lastDay := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := b.DueDay
	if day > lastDay {
		day = lastDay
	}
	return time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, time.UTC)
}

// Status вычисляет статус счета на дату today. paid — есть ли в текущем
// месяце реальная транзакция с именем этого счета. Статус не хранится в БД.
func (b *RecurringBill) Status(paid bool, today time.Time) string {
	if paid {
		return BillStatusPaid
	}
	today = today.UTC().Truncate(24 * time.Hour)
	due := b.DueDateIn(today)
	if due.Before(today) {
		// Платеж этого месяца уже прошел без оплаты, смотрим на следующий месяц
		due = b.DueDateIn(today.AddDate(0, 1, 0))
	}
	if !due.After(today.AddDate(0, 0, billDueSoonDays)) {
		return BillStatusDueSoon
	}
	return BillStatusUpcoming
}

// RecurringBillWithStatus — счет вместе с вычисленным статусом
type RecurringBillWithStatus struct {
	RecurringBill
	Status string `json:"status"`
}

// RecurringBillsSummary — сводка по счетам для списка и обзора
type RecurringBillsSummary struct {
	Total          int     `json:"total"`
	TotalAmount    float64 `json:"total_amount"`
	Paid           int     `json:"paid"`
	PaidAmount     float64 `json:"paid_amount"`
	Upcoming       int     `json:"upcoming"`
	UpcomingAmount float64 `json:"upcoming_amount"`
	DueSoon        int     `json:"due_soon"`
	DueSoonAmount  float64 `json:"due_soon_amount"`
}
