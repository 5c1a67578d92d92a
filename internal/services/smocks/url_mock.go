package smocks

import (
	"context"

	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (u *URLMock) Shorten(ctx context.Context, params services.ShortenParams) (*models.URL, bool, error) {
	args := u.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck
	}
	return args.Get(0).(*models.URL), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Resolve(ctx context.Context, shortID string) (string, error) {
	args := u.Called(ctx, shortID)
	return args.String(0), args.Error(1) //nolint:wrapcheck
}

func (u *URLMock) UpdateExpiry(ctx context.Context, shortID string, minutes *int) (*models.URL, error) {
	args := u.Called(ctx, shortID, minutes)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	args := u.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) IsAliasAvailable(ctx context.Context, alias string) (bool, error) {
	args := u.Called(ctx, alias)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck
}
