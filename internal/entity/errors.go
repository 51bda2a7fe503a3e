package entity

import (
	"errors"
	"net/http"
)

// Error - ошибка уровня приложения с HTTP-статусом.
// Сообщение уходит клиенту как есть, статус проставляет
// единый маппер в слое api.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewAuthError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NewInternalError(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

var (
	// ErrEmailTaken - нарушение уникальности email на уровне хранилища
	ErrEmailTaken = errors.New("email already exists")
)
