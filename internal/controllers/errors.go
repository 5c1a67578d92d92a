package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/tinyurl/internal/services"
)

// Ошибки.
var (
	ErrRecordNotFound = errors.New("record not found") // Запись не найдена
	ErrInternal       = errors.New("internal error")   // Прочая ошибка
	ErrBadRequest     = errors.New("bad request")      // Некорректное тело запроса
)

// errorStatus сопоставляет ошибку сервисного слоя с HTTP статусом и публичной ошибкой.
// Подробности ошибок хранилища наружу не отдаются.
func errorStatus(err error) (int, error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity, err
	case errors.Is(err, services.ErrAliasTaken), errors.Is(err, services.ErrURLAlreadyShortened):
		return http.StatusConflict, err
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound, ErrRecordNotFound
	case errors.Is(err, services.ErrCodeSpaceExhausted):
		return http.StatusServiceUnavailable, ErrInternal
	default:
		return http.StatusInternalServerError, ErrInternal
	}
}
