package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const liveCondition = "expires_at IS NULL OR expires_at > ?"

type URLRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewURLRepo(db *gorm.DB, logger *zap.Logger) *URLRepo {
	return &URLRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/url")),
	}
}

// Create вставляет запись, если идентификатор свободен. Занятый идентификатор возвращает false без ошибки.
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) (*models.URL, bool, error) {
	res := u.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "short_identifier"}},
			DoNothing: true,
		}).
		Create(sURL)
	if res.Error != nil {
		u.logger.Error("failed to create record", zap.Error(res.Error), zap.String("shortID", sURL.ShortIdentifier))
		return nil, false, fmt.Errorf("failed to create record: %w", ConvertErrorType(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return sURL, true, nil
}

func (u *URLRepo) Exists(ctx context.Context, shortID string) (bool, error) {
	var count int64
	if err := u.db.WithContext(ctx).
		Model(&models.URL{}).
		Where("short_identifier = ?", shortID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check record %s: %w", shortID, ConvertErrorType(err))
	}
	return count > 0, nil
}

func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	var url models.URL
	if err := u.db.WithContext(ctx).Where("short_identifier = ?", shortID).First(&url).Error; err != nil {
		return nil, fmt.Errorf("failed to get record by short identifier %s: %w", shortID, ConvertErrorType(err))
	}
	return &url, nil
}

// GetLive находит запись с условием жизни на стороне базы.
func (u *URLRepo) GetLive(ctx context.Context, shortID string, now time.Time) (*models.URL, error) {
	var url models.URL
	if err := u.db.WithContext(ctx).
		Where("short_identifier = ?", shortID).
		Where(liveCondition, now.UTC()).
		First(&url).Error; err != nil {
		return nil, fmt.Errorf("failed to get live record %s: %w", shortID, ConvertErrorType(err))
	}
	return &url, nil
}

func (u *URLRepo) GetLiveByURL(ctx context.Context, rawURL string, now time.Time) (*models.URL, error) {
	var url models.URL
	if err := u.db.WithContext(ctx).
		Where("url = ?", rawURL).
		Where(liveCondition, now.UTC()).
		Order("created_at DESC").
		First(&url).Error; err != nil {
		return nil, fmt.Errorf("failed to get record by url %s: %w", rawURL, ConvertErrorType(err))
	}
	return &url, nil
}

func (u *URLRepo) UpdateExpiresAt(ctx context.Context, shortID string, expiresAt *time.Time) (*models.URL, error) {
	var url models.URL
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.URL{}).
			Where("short_identifier = ?", shortID).
			Update("expires_at", expiresAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("short_identifier = ?", shortID).First(&url).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update expiry of %s: %w", shortID, ConvertErrorType(err))
	}
	return &url, nil
}

func (u *URLRepo) IncrementVisitCount(ctx context.Context, shortID string) error {
	res := u.db.WithContext(ctx).
		Model(&models.URL{}).
		Where("short_identifier = ?", shortID).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment visits of %s: %w", shortID, ConvertErrorType(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to increment visits of %s: %w", shortID, repositories.ErrNotFound)
	}
	return nil
}

func (u *URLRepo) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	res := u.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", t.UTC()).
		Delete(&models.URL{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired records: %w", ConvertErrorType(res.Error))
	}
	return res.RowsAffected, nil
}
