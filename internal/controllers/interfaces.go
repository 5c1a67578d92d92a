package controllers

import (
	"context"

	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

type ShortURLStore interface {
	// Shorten создает запись models.URL. Возвращает модель, булево значение новая записи или нет и ошибку.
	Shorten(ctx context.Context, params services.ShortenParams) (*models.URL, bool, error)
	Resolve(ctx context.Context, shortID string) (string, error)
	UpdateExpiry(ctx context.Context, shortID string, minutes *int) (*models.URL, error)
	GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error)
	IsAliasAvailable(ctx context.Context, alias string) (bool, error)
}
