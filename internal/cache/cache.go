// Package cache кеширует разрешение коротких идентификаторов.
//
// Кеш хранит только оригинальную ссылку и срок жизни записи. Время жизни записи в кеше
// не превышает срока жизни самой ссылки, а изменение срока инвалидирует запись.
package cache

import (
	"errors"
	"time"
)

// ErrMiss запись отсутствует в кеше.
var ErrMiss = errors.New("[cache]: miss")

// Entry закешированное разрешение идентификатора.
type Entry struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
