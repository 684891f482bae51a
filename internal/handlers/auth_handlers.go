package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/internal/auth"
	"github.com/raiyan37/finance-tracker/internal/database"
	"github.com/raiyan37/finance-tracker/models"
)

// setAuthCookie кладет JWT в HTTP-only cookie; токен также возвращается
// в теле ответа для авторизации по заголовку за прокси
func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("COOKIE_SECURE") == "true"
	c.SetCookie("token", token, int(auth.TokenLifetime.Seconds()), "/", "", secure, true)
}

// RegisterHandler регистрирует пользователя и сразу авторизует его
func RegisterHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			respondError(c, http.StatusBadRequest, "Некорректный формат данных", "INVALID_INPUT")
			return
		}
		if user.Email == "" || user.Password == "" || user.Name == "" {
			respondError(c, http.StatusBadRequest, "Email, пароль и имя обязательны", "INVALID_INPUT")
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			mapDBError(c, err)
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			mapDBError(c, err)
			return
		}
		setAuthCookie(c, token)

		log.Printf("Пользователь успешно зарегистрирован: ID = %d", user.ID)
		respondOK(c, http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// LoginHandler проверяет пароль и выдает токен. Перед ответом выполняется
// сверка баланса: дрейф без единой транзакции сбрасывается в ноль
func LoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials models.User
		if err := c.ShouldBindJSON(&credentials); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат данных", "INVALID_INPUT")
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			mapDBError(c, err)
			return
		}

		reset, err := database.ReconcileBalance(pool, user.ID)
		if err != nil {
			log.Printf("Ошибка сверки баланса при входе: %v", err)
		} else if reset {
			user.Balance = 0
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			mapDBError(c, err)
			return
		}
		setAuthCookie(c, token)

		respondOK(c, http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// GoogleLoginHandler принимает ID-токен Google и создает или находит пользователя
func GoogleLoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			IDToken string `json:"id_token"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.IDToken == "" {
			respondError(c, http.StatusBadRequest, "Требуется id_token", "INVALID_INPUT")
			return
		}

		email, name, err := auth.VerifyGoogleToken(c.Request.Context(), body.IDToken)
		if err != nil {
			log.Printf("Ошибка проверки токена Google: %v", err)
			respondError(c, http.StatusUnauthorized, "Недействительный токен Google", "INVALID_GOOGLE_TOKEN")
			return
		}

		user, err := database.UpsertGoogleUser(pool, email, name)
		if err != nil {
			mapDBError(c, err)
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			mapDBError(c, err)
			return
		}
		setAuthCookie(c, token)

		respondOK(c, http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// SessionHandler возвращает текущего пользователя по токену
func SessionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)
		user, err := database.GetUserByID(pool, userID)
		if err != nil {
			mapDBError(c, err)
			return
		}

		reset, err := database.ReconcileBalance(pool, userID)
		if err != nil {
			log.Printf("Ошибка сверки баланса в сессии: %v", err)
		} else if reset {
			user.Balance = 0
		}

		respondOK(c, http.StatusOK, gin.H{"user": user})
	}
}

// LogoutHandler стирает cookie с токеном
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		secure := os.Getenv("COOKIE_SECURE") == "true"
		c.SetCookie("token", "", -1, "/", "", secure, true)
		respondOK(c, http.StatusOK, gin.H{"message": "Выход выполнен"})
	}
}
