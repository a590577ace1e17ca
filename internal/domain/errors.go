package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnknown             = errors.New("unknown error")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientFunds   = errors.New("not enough balance")
	ErrSelfFriendship      = errors.New("self friendship is not allowed")
	ErrDuplicateFriendship = errors.New("duplicate friendship")
)

// InvalidInputError ошибка валидации входных данных сервисного слоя. Сопоставима с ErrInvalidInput через errors.Is.
type InvalidInputError struct {
	msg string
}

func NewInvalidInputError(format string, args ...any) error {
	return &InvalidInputError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), e.msg)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// DuplicateFriendshipError возвращается при попытке повторно подружить пару юзеров, независимо от того,
// кто из них был инициатором. Friend - юзер, которого пытались добавить.
type DuplicateFriendshipError struct {
	User   *User
	Friend *User
}

func NewDuplicateFriendshipError(user, friend *User) error {
	return &DuplicateFriendshipError{User: user, Friend: friend}
}

func (e *DuplicateFriendshipError) Error() string {
	return fmt.Sprintf("%s is already your friend", e.Friend.Name)
}

func (e *DuplicateFriendshipError) Unwrap() error {
	return ErrDuplicateFriendship
}
