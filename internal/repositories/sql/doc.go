// Package sql предоставляет реализацию репозитория URL поверх gorm (sqlite).
//
// Вставка выполняется как INSERT ... ON CONFLICT (short_identifier) DO NOTHING:
// занятый идентификатор дает RowsAffected == 0, а не ошибку.
//
// Ошибки gorm преобразуются в ошибки уровня репозитория с помощью ConvertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
