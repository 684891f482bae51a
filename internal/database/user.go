package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raiyan37/finance-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя с локальным паролем
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (email, password, name, auth_provider)
		VALUES ($1, $2, $3, 'local')
		RETURNING id, balance, auth_provider, created_at`
	err = pool.QueryRow(context.Background(), query, user.Email, hashedPassword, user.Name).
		Scan(&user.ID, &user.Balance, &user.AuthProvider, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	user.Password = ""
	return nil
}

// AuthenticateUser проверяет email и пароль
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, name, balance, auth_provider, created_at FROM users WHERE email = $1`
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Balance, &user.AuthProvider, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %v", err)
	}

	if user.Password == "" {
		// Аккаунт создан через Google, локального пароля нет
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}

// UpsertGoogleUser создает или возвращает пользователя, вошедшего через Google
func UpsertGoogleUser(pool *pgxpool.Pool, email, name string) (*models.User, error) {
	var user models.User
	query := `
		INSERT INTO users (email, password, name, auth_provider)
		VALUES ($1, '', $2, 'google')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, email, name, balance, auth_provider, created_at`
	err := pool.QueryRow(context.Background(), query, email, name).Scan(
		&user.ID, &user.Email, &user.Name, &user.Balance, &user.AuthProvider, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя Google: %v", err)
	}
	return &user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, email, name, balance, auth_provider, created_at FROM users WHERE id = $1`
	var user models.User
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.Balance, &user.AuthProvider, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}
	return &user, nil
}

func GetUserBalance(pool *pgxpool.Pool, userID int) (float64, error) {
	var balance float64
	err := pool.QueryRow(context.Background(), `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("ошибка получения баланса: %v", err)
	}
	return balance, nil
}

func DeleteUser(pool *pgxpool.Pool, id int) error {
	result, err := pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
