package models

import "time"

// DefaultShortIdentifierLength длина генерируемой короткой ссылки по умолчанию.
const DefaultShortIdentifierLength = 8

// URL структура модели хранения URL.
//
// ShortIdentifier уникален среди всех хранимых записей, включая истекшие, но еще не удаленные.
// ExpiresAt == nil означает бессрочную ссылку.
type URL struct {
	ID              uint       `json:"ID" gorm:"primaryKey"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ExpiresAt       *time.Time `json:"expiresAt" gorm:"index"`
	URL             string     `json:"url" gorm:"not null;index"`
	ShortIdentifier string     `json:"shortIdentifier" gorm:"uniqueIndex;size:64;not null"`
	VisitCount      int64      `json:"visitCount" gorm:"not null;default:0"`
}

// IsLive сообщает, жива ли ссылка в момент now.
func (u *URL) IsLive(now time.Time) bool {
	return u.ExpiresAt == nil || u.ExpiresAt.After(now)
}
