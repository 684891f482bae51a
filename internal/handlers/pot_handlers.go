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
	"github.com/shopspring/decimal"
)

func CreatePotHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pot models.Pot
		if err := c.ShouldBindJSON(&pot); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			respondError(c, http.StatusBadRequest, "Некорректный формат копилки", "INVALID_INPUT")
			return
		}
		pot.UserID = auth.UserID(c)
		pot.Total = 0 // Начальный остаток всегда нулевой, пополнение отдельной операцией

		if pot.Name == "" || pot.Target <= 0 || pot.Theme == "" {
			respondError(c, http.StatusBadRequest, "Название, цель и тема копилки обязательны", "INVALID_INPUT")
			return
		}

		if err := database.CreatePot(pool, &pot); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, pot)
	}
}

func GetPotsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		pots, err := database.GetPotsByUserID(pool, auth.UserID(c))
		if err != nil {
			mapDBError(c, err)
			return
		}
		if pots == nil {
			pots = []models.Pot{}
		}
		respondOK(c, http.StatusOK, pots)
	}
}

func UpdatePotHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор копилки", "INVALID_ID")
			return
		}

		var pot models.Pot
		if err := c.ShouldBindJSON(&pot); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат копилки", "INVALID_INPUT")
			return
		}
		pot.ID = id
		pot.UserID = auth.UserID(c)

		if pot.Name == "" || pot.Target <= 0 {
			respondError(c, http.StatusBadRequest, "Некорректные данные копилки", "INVALID_INPUT")
			return
		}

		if err := database.UpdatePot(pool, &pot); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, pot)
	}
}

// DeletePotHandler удаляет копилку, остаток возвращается на баланс
func DeletePotHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор копилки", "INVALID_ID")
			return
		}
		if err := database.DeletePot(pool, id, auth.UserID(c)); err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"message": "Копилка удалена, средства возвращены на баланс"})
	}
}

type potTransferRequest struct {
	Amount float64 `json:"amount"`
}

// DepositPotHandler переводит сумму с баланса в копилку
func DepositPotHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор копилки", "INVALID_ID")
			return
		}

		var body potTransferRequest
		if err := c.ShouldBindJSON(&body); err != nil || body.Amount <= 0 {
			respondError(c, http.StatusBadRequest, "Сумма перевода должна быть положительной", "INVALID_INPUT")
			return
		}

		userID := auth.UserID(c)
		if err := database.DepositToPot(pool, userID, id, decimal.NewFromFloat(body.Amount)); err != nil {
			mapDBError(c, err)
			return
		}

		pot, err := database.GetPotByID(pool, id, userID)
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, pot)
	}
}

// WithdrawPotHandler возвращает сумму из копилки на баланс
func WithdrawPotHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный идентификатор копилки", "INVALID_ID")
			return
		}

		var body potTransferRequest
		if err := c.ShouldBindJSON(&body); err != nil || body.Amount <= 0 {
			respondError(c, http.StatusBadRequest, "Сумма перевода должна быть положительной", "INVALID_INPUT")
			return
		}

		userID := auth.UserID(c)
		if err := database.WithdrawFromPot(pool, userID, id, decimal.NewFromFloat(body.Amount)); err != nil {
			mapDBError(c, err)
			return
		}

		pot, err := database.GetPotByID(pool, id, userID)
		if err != nil {
			mapDBError(c, err)
			return
		}
		respondOK(c, http.StatusOK, pot)
	}
}
