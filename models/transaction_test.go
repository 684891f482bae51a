package models_test

import (
	"testing"
	"time"

	"github.com/raiyan37/finance-tracker/models"
)

func TestSameMonth(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)
	if !models.SameMonth(a, b) {
		t.Error("границы одного месяца должны совпадать")
	}

	c := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if models.SameMonth(b, c) {
		t.Error("соседние месяцы не должны совпадать")
	}

	// Один и тот же месяц разных лет — не совпадение
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if models.SameMonth(a, d) {
		t.Error("март разных лет не должен совпадать")
	}
}

func TestAffectsBalance(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	current := models.Transaction{Amount: -50, Date: now.AddDate(0, 0, -3)}
	if !current.AffectsBalance(now) {
		t.Error("транзакция текущего месяца должна менять баланс")
	}

	old := models.Transaction{Amount: -50, Date: now.AddDate(0, -1, 0)}
	if old.AffectsBalance(now) {
		t.Error("транзакция прошлого месяца не должна менять баланс")
	}

	template := models.Transaction{Amount: -50, Date: now, IsTemplate: true}
	if template.AffectsBalance(now) {
		t.Error("шаблонная транзакция не должна менять баланс")
	}
}
