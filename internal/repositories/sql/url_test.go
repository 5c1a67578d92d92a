package sql

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tinyurl/internal/db"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/repositories"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type URLRepoSuite struct {
	suite.Suite
	repo *URLRepo
	now  time.Time
}

func (s *URLRepoSuite) SetupTest() {
	conn, err := db.NewSQLite(":memory:", nil)
	s.Require().NoError(err)
	s.repo = NewURLRepo(conn, zap.NewNop())
	s.now = time.Now().UTC().Truncate(time.Second)
}

func (s *URLRepoSuite) newURL(code string, expiresAt *time.Time) *models.URL {
	return &models.URL{
		ShortIdentifier: code,
		URL:             gofakeit.URL(),
		CreatedAt:       s.now,
		ExpiresAt:       expiresAt,
	}
}

func (s *URLRepoSuite) TestCreate() {
	ctx := s.T().Context()

	m, created, err := s.repo.Create(ctx, s.newURL("abcd1234", nil))
	s.Require().NoError(err)
	s.True(created)
	s.NotZero(m.ID)

	m, created, err = s.repo.Create(ctx, s.newURL("abcd1234", nil))
	s.Require().NoError(err)
	s.False(created)
	s.Nil(m)

	exists, err := s.repo.Exists(ctx, "abcd1234")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(ctx, "zzzz0000")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *URLRepoSuite) TestCreate_Concurrent() {
	ctx := s.T().Context()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := s.repo.Create(ctx, s.newURL("same0001", nil))
			if err != nil {
				s.T().Error(err)
				return
			}
			if created {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), wins.Load())
}

func (s *URLRepoSuite) TestGetLive() {
	ctx := s.T().Context()
	past := s.now.Add(-time.Minute)
	future := s.now.Add(time.Hour)

	_, _, err := s.repo.Create(ctx, s.newURL("expired1", &past))
	s.Require().NoError(err)
	_, _, err = s.repo.Create(ctx, s.newURL("future01", &future))
	s.Require().NoError(err)
	_, _, err = s.repo.Create(ctx, s.newURL("forever1", nil))
	s.Require().NoError(err)

	_, err = s.repo.GetLive(ctx, "expired1", s.now)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, err = s.repo.GetLive(ctx, "missing1", s.now)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	m, err := s.repo.GetLive(ctx, "future01", s.now)
	s.Require().NoError(err)
	s.Equal("future01", m.ShortIdentifier)

	_, err = s.repo.GetLive(ctx, "forever1", s.now)
	s.Require().NoError(err)

	// без фильтра истекшая запись доступна
	m, err = s.repo.GetByShortIdentifier(ctx, "expired1")
	s.Require().NoError(err)
	s.Equal("expired1", m.ShortIdentifier)
}

func (s *URLRepoSuite) TestGetLiveByURL() {
	ctx := s.T().Context()
	past := s.now.Add(-time.Minute)

	expired := s.newURL("expired2", &past)
	live := s.newURL("live0002", nil)
	live.URL = expired.URL

	_, _, err := s.repo.Create(ctx, expired)
	s.Require().NoError(err)

	_, err = s.repo.GetLiveByURL(ctx, expired.URL, s.now)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, _, err = s.repo.Create(ctx, live)
	s.Require().NoError(err)

	m, err := s.repo.GetLiveByURL(ctx, expired.URL, s.now)
	s.Require().NoError(err)
	s.Equal("live0002", m.ShortIdentifier)
}

func (s *URLRepoSuite) TestUpdateExpiresAt() {
	ctx := s.T().Context()
	past := s.now.Add(-time.Minute)
	_, _, err := s.repo.Create(ctx, s.newURL("update01", &past))
	s.Require().NoError(err)

	future := s.now.Add(time.Hour)
	m, err := s.repo.UpdateExpiresAt(ctx, "update01", &future)
	s.Require().NoError(err)
	s.Require().NotNil(m.ExpiresAt)
	s.True(future.Equal(*m.ExpiresAt))

	_, err = s.repo.GetLive(ctx, "update01", s.now)
	s.Require().NoError(err)

	m, err = s.repo.UpdateExpiresAt(ctx, "update01", nil)
	s.Require().NoError(err)
	s.Nil(m.ExpiresAt)

	_, err = s.repo.UpdateExpiresAt(ctx, "missing1", nil)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *URLRepoSuite) TestIncrementVisitCount() {
	ctx := s.T().Context()
	_, _, err := s.repo.Create(ctx, s.newURL("visits01", nil))
	s.Require().NoError(err)

	for range 3 {
		s.Require().NoError(s.repo.IncrementVisitCount(ctx, "visits01"))
	}
	m, err := s.repo.GetByShortIdentifier(ctx, "visits01")
	s.Require().NoError(err)
	s.Equal(int64(3), m.VisitCount)

	s.Require().ErrorIs(s.repo.IncrementVisitCount(ctx, "missing1"), repositories.ErrNotFound)
}

func (s *URLRepoSuite) TestDeleteExpiredBefore() {
	ctx := s.T().Context()
	past := s.now.Add(-time.Minute)
	future := s.now.Add(time.Hour)

	for _, m := range []*models.URL{
		s.newURL("gone0001", &past),
		s.newURL("gone0002", &past),
		s.newURL("stay0001", &future),
		s.newURL("stay0002", nil),
	} {
		_, _, err := s.repo.Create(ctx, m)
		s.Require().NoError(err)
	}

	deleted, err := s.repo.DeleteExpiredBefore(ctx, s.now)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	exists, err := s.repo.Exists(ctx, "gone0001")
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.repo.Exists(ctx, "stay0002")
	s.Require().NoError(err)
	s.True(exists)
}

func TestURLRepoSuite(t *testing.T) {
	suite.Run(t, new(URLRepoSuite))
}
