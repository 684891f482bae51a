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

// CreateTransactionHandler создает транзакцию текущего пользователя
func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			respondError(c, http.StatusBadRequest, "Некорректный формат транзакции", "INVALID_INPUT")
			return
		}
		transaction.UserID = auth.UserID(c)

		if transaction.Name == "" || transaction.Amount == 0 || transaction.Date.IsZero() {
			respondError(c, http.StatusBadRequest, "Название, сумма и дата обязательны", "INVALID_INPUT")
			return
		}
		if !models.IsValidCategory(transaction.Category) {
			respondError(c, http.StatusBadRequest, "Неизвестная категория", "INVALID_CATEGORY")
			return
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, transaction)
	}
}

// GetTransactionsHandler возвращает транзакции с фильтрами и пагинацией
func GetTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := database.TransactionFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
		}
		filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		transactions, err := database.GetTransactionsByUserID(pool, auth.UserID(c), filter)
		if err != nil {
			mapDBError(c, err)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		respondOK(c, http.StatusOK, transactions)
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор транзакции", "INVALID_ID")
			return
		}
		transaction, err := database.GetTransactionByID(pool, id, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, transaction)
	}
}

// UpdateTransactionHandler обновляет транзакцию с пересчетом вклада в баланс
func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор транзакции", "INVALID_ID")
			return
		}

		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат транзакции", "INVALID_INPUT")
			return
		}
		transaction.ID = id
		transaction.UserID = auth.UserID(c)

		if transaction.Name == "" || transaction.Amount == 0 || transaction.Date.IsZero() {
			respondError(c, http.StatusBadRequest, "Название, сумма и дата обязательны", "INVALID_INPUT")
			return
		}
		if !models.IsValidCategory(transaction.Category) {
			respondError(c, http.StatusBadRequest, "Неизвестная категория", "INVALID_CATEGORY")
			return
		}

		if err := database.UpdateTransaction(pool, &transaction); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, transaction)
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор транзакции", "INVALID_ID")
			return
		}
		if err := database.DeleteTransaction(pool, id, auth.UserID(c)); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	}
}
