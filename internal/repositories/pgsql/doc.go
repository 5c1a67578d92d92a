// Package pgsql предоставляет реализацию репозитория URL для PostgreSQL поверх pgx.
//
// Все методы репозитория преобразуют ошибки PostgreSQL в общие ошибки уровня репозитория
// с помощью convertErrType:
//   - pgx.ErrNoRows -> repositories.ErrNotFound
//   - uniqueViolationCode (23505) -> repositories.ErrDuplicateKey
//   - другие ошибки -> repositories.ErrUnknown
package pgsql
