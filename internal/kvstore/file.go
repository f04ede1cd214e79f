package kvstore

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore keeps each key as a JSON file inside a directory. It is the
// local-disk analogue of browser storage and backs single-user setups where
// no Redis is running.
type FileStore struct {
	dir string
}

func NewFile(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool) {
	v, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return v, true
}

func (s *FileStore) Save(_ context.Context, key string, value []byte) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		zap.L().Warn("kvstore create dir failed", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		zap.L().Warn("kvstore file write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
