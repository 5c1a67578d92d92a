package services

import "errors"

var (
	ErrUnknown        = errors.New("[service]: unknown error")
	ErrRecordNotFound = errors.New("[service]: record not found")
	ErrValidation     = errors.New("[service]: validation failed")
	// ErrAliasTaken запрошенный пользователем идентификатор уже занят.
	ErrAliasTaken = errors.New("[service]: alias already taken")
	// ErrCodeSpaceExhausted исчерпаны попытки подобрать свободный идентификатор.
	ErrCodeSpaceExhausted = errors.New("[service]: code space exhausted")
	// ErrStorage временная ошибка хранилища, не связанная с коллизией.
	ErrStorage = errors.New("[service]: storage error")
	// ErrURLAlreadyShortened при включенной дедупликации ссылка уже сокращена под другим идентификатором.
	ErrURLAlreadyShortened = errors.New("[service]: url already shortened")
)
