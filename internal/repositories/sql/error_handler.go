package sql

import (
	"fmt"

	"github.com/fsdevblog/tinyurl/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConvertErrorType приводит ошибки gorm к ошибкам уровня репозитория, сохраняя исходную в цепочке.
func ConvertErrorType(err error) error {
	if err == nil {
		return nil
	}
	var nativeErr error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}
