package memory

import (
	"context"
	"io"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage key/value хранилище в памяти. Значения хранятся сериализованными в json,
// поэтому наружу всегда отдаются копии.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

// SetOptions опции записи.
type SetOptions struct {
	Overwrite bool
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return len(m.data)
}

func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

// Get возвращает значение по ключу или ErrNotFound.
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set Сохраняет новые пары ключ/значение. Ключ обязан быть уникальным, иначе вернется ошибка ErrDuplicateKey.
// Проверка и запись выполняются под одной блокировкой.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok && !options.Overwrite {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Update атомарно изменяет существующее значение функцией fn.
// Если fn вернула ошибку, значение не меняется.
func Update[T any](ctx context.Context, key string, m *MStorage, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var val T
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	if err := fn(&val); err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(&val)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	m.data[key] = bytes
	return &val, nil
}

// GetAll возвращает все значения хранилища.
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, m, func(T) bool { return true })
}

// FilterAll возвращает значения, для которых fn вернула true.
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(val T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0)
	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}

// DeleteFunc удаляет значения, для которых fn вернула true. Возвращает число удаленных записей.
func DeleteFunc[T any](ctx context.Context, m *MStorage, fn func(val T) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	var deleted int64
	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return deleted, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			delete(m.data, key)
			deleted++
		}
	}
	return deleted, nil
}

// Dump записывает содержимое хранилища в w.
func (m *MStorage) Dump(w io.Writer) error {
	m.m.RLock()
	defer m.m.RUnlock()

	snapshot := make(map[string]json.RawMessage, len(m.data))
	for k, v := range m.data {
		snapshot[k] = v
	}
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	return nil
}

// Load заменяет содержимое хранилища данными из r.
func (m *MStorage) Load(r io.Reader) error {
	var snapshot map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return errors.Wrap(err, "failed to decode snapshot")
	}

	data := make(map[string][]byte, len(snapshot))
	for k, v := range snapshot {
		data[k] = v
	}

	m.m.Lock()
	defer m.m.Unlock()
	m.data = data
	return nil
}
