package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound               = errors.New("запись не найдена")
	ErrDuplicate              = errors.New("запись с такими данными уже существует")
	ErrInsufficientBalance    = errors.New("недостаточно средств на балансе")
	ErrInsufficientPotBalance = errors.New("недостаточно средств в копилке")
	ErrAlreadyPaid            = errors.New("счет уже оплачен в этом месяце")
	ErrInvalidCredentials     = errors.New("неверный email или пароль")
)

// isUniqueViolation распознает нарушение уникального ограничения Postgres (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
