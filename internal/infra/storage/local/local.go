package local

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/david-develop/files-manager/internal/domain"
)

// Storage пишет блобы в плоский каталог под случайными именами.
// Имя никогда не выводится из имени файла пользователя.
type Storage struct {
	root   string
	logger *log.Logger
}

// New создаёт каталог один раз при старте, а не на каждый аплоад.
func New(root string, logger *log.Logger) (*Storage, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("ensure storage root %s: %w", root, err)
	}
	logger.Printf("root %s ready", root)
	return &Storage{root: root, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

// Put пишет контент целиком одним вызовом и возвращает ключ (имя файла).
func (s *Storage) Put(_ context.Context, data []byte) (string, error) {
	key := uuid.NewString()
	path := filepath.Join(s.root, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Printf("write %s failed: %v", path, err)
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.logger.Printf("wrote %s (%d bytes)", key, len(data))
	return key, nil
}

func (s *Storage) Get(_ context.Context, storageKey string) ([]byte, error) {
	// ключ — наш uuid; берём только базовое имя, чтобы не выйти из каталога
	path := filepath.Join(s.root, filepath.Base(storageKey))
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Printf("read %s failed: %v", path, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return data, nil
}
