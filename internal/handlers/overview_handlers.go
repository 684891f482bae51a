package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/auth"
	"github.com/raiyan37/finance-tracker/internal/database"
)

// GetOverviewHandler отдает агрегированные данные для главной страницы
func GetOverviewHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := database.GetOverview(pool, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, overview)
	}
}

// GetBalanceHandler отдает только текущий баланс
func GetBalanceHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		balance, err := database.GetUserBalance(pool, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"balance": balance})
	}
}
