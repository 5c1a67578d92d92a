package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const urlColumns = "id, created_at, updated_at, expires_at, url, short_identifier, visit_count"

// DBTX общий интерфейс пула и транзакции pgx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgxpool.Pool)(nil)

// URLRepo репозиторий URL в PostgreSQL.
type URLRepo struct {
	conn DBTX
}

func NewURLRepo(conn DBTX) *URLRepo {
	return &URLRepo{conn: conn}
}

// Create вставляет запись через ON CONFLICT DO NOTHING. Если идентификатор занят,
// строка не возвращается и результат равен (nil, false, nil).
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) (*models.URL, bool, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO urls (created_at, updated_at, expires_at, url, short_identifier, visit_count)
		VALUES ($1, $1, $2, $3, $4, 0)
		ON CONFLICT (short_identifier) DO NOTHING
		RETURNING `+urlColumns,
		sURL.CreatedAt, sURL.ExpiresAt, sURL.URL, sURL.ShortIdentifier,
	)
	m, err := scanURL(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to create record: %w", convertErrType(err))
	}
	return m, true, nil
}

func (u *URLRepo) Exists(ctx context.Context, shortID string) (bool, error) {
	var exists bool
	err := u.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM urls WHERE short_identifier = $1)`, shortID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check record %s: %w", shortID, convertErrType(err))
	}
	return exists, nil
}

func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	row := u.conn.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls WHERE short_identifier = $1`, shortID)
	m, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by short identifier %s: %w", shortID, convertErrType(err))
	}
	return m, nil
}

func (u *URLRepo) GetLive(ctx context.Context, shortID string, now time.Time) (*models.URL, error) {
	row := u.conn.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls
		WHERE short_identifier = $1 AND (expires_at IS NULL OR expires_at > $2)`, shortID, now)
	m, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get live record %s: %w", shortID, convertErrType(err))
	}
	return m, nil
}

func (u *URLRepo) GetLiveByURL(ctx context.Context, rawURL string, now time.Time) (*models.URL, error) {
	row := u.conn.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls
		WHERE url = $1 AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY created_at DESC LIMIT 1`, rawURL, now)
	m, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by url %s: %w", rawURL, convertErrType(err))
	}
	return m, nil
}

func (u *URLRepo) UpdateExpiresAt(ctx context.Context, shortID string, expiresAt *time.Time) (*models.URL, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE urls SET expires_at = $2, updated_at = now()
		WHERE short_identifier = $1
		RETURNING `+urlColumns, shortID, expiresAt)
	m, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update expiry of %s: %w", shortID, convertErrType(err))
	}
	return m, nil
}

func (u *URLRepo) IncrementVisitCount(ctx context.Context, shortID string) error {
	tag, err := u.conn.Exec(ctx,
		`UPDATE urls SET visit_count = visit_count + 1 WHERE short_identifier = $1`, shortID)
	if err != nil {
		return fmt.Errorf("failed to increment visits of %s: %w", shortID, convertErrType(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to increment visits of %s: %w", shortID, repositories.ErrNotFound)
	}
	return nil
}

func (u *URLRepo) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	tag, err := u.conn.Exec(ctx,
		`DELETE FROM urls WHERE expires_at IS NOT NULL AND expires_at <= $1`, t)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired records: %w", convertErrType(err))
	}
	return tag.RowsAffected(), nil
}

func scanURL(row pgx.Row) (*models.URL, error) {
	var m models.URL
	var id int64
	if err := row.Scan(&id, &m.CreatedAt, &m.UpdatedAt, &m.ExpiresAt, &m.URL, &m.ShortIdentifier, &m.VisitCount); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.ID = uint(id) //nolint:gosec
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	if m.ExpiresAt != nil {
		t := m.ExpiresAt.UTC()
		m.ExpiresAt = &t
	}
	return &m, nil
}
