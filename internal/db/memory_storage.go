package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsdevblog/tinyurl/internal/db/memory"
)

type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}

// Ping хранилище в памяти всегда доступно.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

// Backup сохраняет содержимое хранилища в файл path. Пустой path означает, что бекап отключен.
// Запись идет во временный файл, который затем переименовывается.
func (m *MemoryStorage) Backup(path string) error {
	if path == "" {
		return nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp backup file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if dumpErr := m.Dump(tmp); dumpErr != nil {
		_ = tmp.Close()
		return fmt.Errorf("dump storage: %w", dumpErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return fmt.Errorf("close temp backup file: %w", closeErr)
	}
	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		return fmt.Errorf("rename backup file: %w", renameErr)
	}
	return nil
}

// Restore загружает содержимое хранилища из файла path. Отсутствующий файл не является ошибкой.
func (m *MemoryStorage) Restore(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	if loadErr := m.Load(f); loadErr != nil {
		return fmt.Errorf("load storage: %w", loadErr)
	}
	return nil
}
