package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func acceptCreate(_ context.Context, m *models.URL) (*models.URL, bool, error) {
	return m, true, nil
}

func TestArbiter_Allocate_RetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)

	gomock.InOrder(
		gen.EXPECT().Generate().Return("taken001", nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, nil),
		gen.EXPECT().Generate().Return("free0001", nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(acceptCreate),
	)

	a := NewArbiter(repo, gen, 5, zap.NewNop())
	m, err := a.Allocate(t.Context(), &models.URL{URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "free0001", m.ShortIdentifier)
	assert.Equal(t, "https://example.com", m.URL)
}

func TestArbiter_Allocate_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)

	gen.EXPECT().Generate().Return("taken001", nil).Times(3)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(3)

	a := NewArbiter(repo, gen, 3, zap.NewNop())
	_, err := a.Allocate(t.Context(), &models.URL{URL: "https://example.com"})
	require.ErrorIs(t, err, ErrCodeSpaceExhausted)
}

func TestArbiter_Allocate_StorageErrorIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)
	dbErr := errors.New("connection refused")

	gen.EXPECT().Generate().Return("code0001", nil).Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, dbErr).Times(1)

	a := NewArbiter(repo, gen, 10, zap.NewNop())
	_, err := a.Allocate(t.Context(), &models.URL{URL: "https://example.com"})
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrCodeSpaceExhausted)
}

func TestArbiter_Allocate_GeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)

	gen.EXPECT().Generate().Return("", errors.New("entropy")).Times(1)

	a := NewArbiter(repo, gen, 10, zap.NewNop())
	_, err := a.Allocate(t.Context(), &models.URL{URL: "https://example.com"})
	require.ErrorIs(t, err, ErrUnknown)
}

func TestArbiter_Allocate_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	a := NewArbiter(repo, gen, 10, zap.NewNop())
	_, err := a.Allocate(ctx, &models.URL{URL: "https://example.com"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestArbiter_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockURLRepository(ctrl)
	gen := mocks.NewMockCodeGenerator(ctrl)

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(acceptCreate),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("timeout")),
	)

	a := NewArbiter(repo, gen, 10, zap.NewNop())

	m, err := a.Reserve(t.Context(), &models.URL{URL: "https://example.com", ShortIdentifier: "my-link"})
	require.NoError(t, err)
	assert.Equal(t, "my-link", m.ShortIdentifier)

	_, err = a.Reserve(t.Context(), &models.URL{URL: "https://example.org", ShortIdentifier: "my-link"})
	require.ErrorIs(t, err, ErrAliasTaken)

	_, err = a.Reserve(t.Context(), &models.URL{URL: "https://example.org", ShortIdentifier: "other"})
	require.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrAliasTaken)
}
