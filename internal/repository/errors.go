package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Доменные ошибки хранилища. Обработчики сопоставляют их со статус-кодами
// через errors.Is.
var (
	ErrDuplicateUsername  = errors.New("имя пользователя уже занято")
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrPostNotFound       = errors.New("пост не найден")
	ErrImageNotFound      = errors.New("изображение не найдено")
	ErrAlreadyFollowing   = errors.New("вы уже подписаны на этого пользователя")
	ErrNotFollowing       = errors.New("вы не подписаны на этого пользователя")
	ErrSelfFollow         = errors.New("нельзя подписаться на самого себя")
)

const (
	pgUniqueViolation     = pq.ErrorCode("23505")
	pgForeignKeyViolation = pq.ErrorCode("23503")
)

func isPgError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
