package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/auth"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

func CreateRecurringBillHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bill models.RecurringBill
		if err := c.ShouldBindJSON(&bill); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			respondError(c, http.StatusBadRequest, "Некорректный формат счета", "INVALID_INPUT")
			return
		}
		bill.UserID = auth.UserID(c)

		if bill.Name == "" || bill.Amount >= 0 || bill.DueDay < 1 || bill.DueDay > 31 {
			respondError(c, http.StatusBadRequest, "Счет должен иметь название, отрицательную сумму и день платежа 1-31", "INVALID_INPUT")
			return
		}
		if !models.IsValidCategory(bill.Category) {
			respondError(c, http.StatusBadRequest, "Неизвестная категория", "INVALID_CATEGORY")
			return
		}

		if err := database.CreateRecurringBill(pool, &bill); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, bill)
	}
}

// GetRecurringBillsHandler возвращает счета со статусами и сводкой
func GetRecurringBillsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		bills, summary, err := database.GetRecurringBillsWithStatus(pool, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		if bills == nil {
			bills = []models.RecurringBillWithStatus{}
		}
		respondOK(c, http.StatusOK, gin.H{"bills": bills, "summary": summary})
	}
}

func UpdateRecurringBillHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор счета", "INVALID_ID")
			return
		}

		var bill models.RecurringBill
		if err := c.ShouldBindJSON(&bill); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат счета", "INVALID_INPUT")
			return
		}
		bill.ID = id
		bill.UserID = auth.UserID(c)

		if bill.Name == "" || bill.Amount >= 0 || bill.DueDay < 1 || bill.DueDay > 31 || !models.IsValidCategory(bill.Category) {
			respondError(c, http.StatusBadRequest, "Некорректные данные счета", "INVALID_INPUT")
			return
		}

		if err := database.UpdateRecurringBill(pool, &bill); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, bill)
	}
}

func DeleteRecurringBillHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор счета", "INVALID_ID")
			return
		}
		if err := database.DeleteRecurringBill(pool, id, auth.UserID(c)); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"message": "Счет успешно удален"})
	}
}

// PayRecurringBillHandler создает платеж по счету за текущий месяц
func PayRecurringBillHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор счета", "INVALID_ID")
			return
		}

		payment, err := database.PayRecurringBill(pool, id, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, payment)
	}
}
