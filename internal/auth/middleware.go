package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Middleware достает JWT из cookie "token" или заголовка Authorization: Bearer
// (для развертываний за прокси, где cookie недоступны) и кладет user_id в контекст
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie("token")
		if tokenString == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Требуется авторизация", "code": "UNAUTHORIZED"})
			return
		}

		userID, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Недействительный или истекший токен", "code": "INVALID_TOKEN"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID возвращает идентификатор пользователя, установленный Middleware
func UserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
