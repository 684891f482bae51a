package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raiyan37/finance-tracker/internal/database"
)

// Единый конверт ответа: {success, data} либо {success, message, code}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, gin.H{"success": false, "message": message, "code": code})
}

// mapDBError переводит сентинельные ошибки слоя БД в HTTP-ответ
func mapDBError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(c, http.StatusNotFound, "Запись не найдена", "NOT_FOUND")
	case errors.Is(err, database.ErrDuplicate):
		respondError(c, http.StatusConflict, "Запись с такими данными уже существует", "DUPLICATE")
	case errors.Is(err, database.ErrInsufficientBalance):
		respondError(c, http.StatusBadRequest, "Недостаточно средств на балансе", "INSUFFICIENT_BALANCE")
	case errors.Is(err, database.ErrInsufficientPotBalance):
		respondError(c, http.StatusBadRequest, "Недостаточно средств в копилке", "INSUFFICIENT_POT_BALANCE")
	case errors.Is(err, database.ErrAlreadyPaid):
		respondError(c, http.StatusConflict, "Счет уже оплачен в этом месяце", "ALREADY_PAID")
	case errors.Is(err, database.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Неверный email или пароль", "INVALID_CREDENTIALS")
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		respondError(c, http.StatusInternalServerError, "Внутренняя ошибка сервера", "INTERNAL")
	}
}
