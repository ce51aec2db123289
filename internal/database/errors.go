package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Типизированные ошибки слоя данных. Обработчики переводят их в HTTP-статусы,
// текст ошибок хранилища наружу не выходит.
var (
	ErrNotFound        = errors.New("запись не найдена")
	ErrDuplicateEmail  = errors.New("пользователь с таким email уже существует")
	ErrDuplicateBudget = errors.New("бюджет для этой категории на этот месяц и год уже существует")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
