package models

// Overview — агрегированные данные для главной страницы
type Overview struct {
	Balance            float64               `json:"balance"`
	Income             float64               `json:"income"`   // Доходы текущего месяца
	Expenses           float64               `json:"expenses"` // Расходы текущего месяца (по модулю)
	Pots               OverviewPots          `json:"pots"`
	Budgets            []BudgetSummary       `json:"budgets"`
	RecentTransactions []Transaction         `json:"recent_transactions"`
	RecurringBills     RecurringBillsSummary `json:"recurring_bills"`
}

type OverviewPots struct {
	Total float64 `json:"total"`
	Pots  []Pot   `json:"pots"`
}
