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

func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			respondError(c, http.StatusBadRequest, "Некорректный формат бюджета", "INVALID_INPUT")
			return
		}
		budget.UserID = auth.UserID(c)

		if budget.Maximum <= 0 || budget.Theme == "" {
			respondError(c, http.StatusBadRequest, "Лимит и тема бюджета обязательны", "INVALID_INPUT")
			return
		}
		if !models.IsValidCategory(budget.Category) {
			respondError(c, http.StatusBadRequest, "Неизвестная категория", "INVALID_CATEGORY")
			return
		}

		if err := database.CreateBudget(pool, &budget); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, budget)
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор бюджета", "INVALID_ID")
			return
		}
		budget, err := database.GetBudgetByID(pool, id, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, budget)
	}
}

// GetBudgetsHandler возвращает бюджеты с вычисленными spent и remaining
func GetBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		budgets, err := database.GetBudgetsByUserID(pool, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		if budgets == nil {
			budgets = []models.BudgetSummary{}
		}
		respondOK(c, http.StatusOK, budgets)
	}
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор бюджета", "INVALID_ID")
			return
		}

		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат бюджета", "INVALID_INPUT")
			return
		}
		budget.ID = id
		budget.UserID = auth.UserID(c)

		if budget.Maximum <= 0 || !models.IsValidCategory(budget.Category) {
			respondError(c, http.StatusBadRequest, "Некорректные данные бюджета", "INVALID_INPUT")
			return
		}

		if err := database.UpdateBudget(pool, &budget); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, budget)
	}
}

func DeleteBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор бюджета", "INVALID_ID")
			return
		}
		if err := database.DeleteBudget(pool, id, auth.UserID(c)); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"message": "Бюджет успешно удален"})
	}
}
