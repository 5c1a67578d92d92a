package pgsql

import (
	"errors"
	"testing"

	"github.com/fsdevblog/tinyurl/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErrType(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	otherPgErr := &pgconn.PgError{Code: "40001"}
	plain := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "no rows", err: pgx.ErrNoRows, target: repositories.ErrNotFound},
		{name: "unique violation", err: uniqueErr, target: repositories.ErrDuplicateKey},
		{name: "other pg error", err: otherPgErr, target: repositories.ErrUnknown},
		{name: "plain error", err: plain, target: repositories.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertErrType(tt.err)
			assert.ErrorIs(t, got, tt.target)
			assert.ErrorIs(t, got, tt.err)
		})
	}
	assert.NoError(t, convertErrType(nil))
}
