package blobstore

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps blobs in process memory. Meant for development and tests:
// nothing survives a restart, and freecache caps a single value at 1/1024 of the
// cache size (256 KiB with the default 256 MB).
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore(sizeMB int) *MemoryStore {
	if sizeMB <= 0 {
		sizeMB = 256
	}
	megabyte := 1024 * 1024
	return &MemoryStore{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// no expiration
	return s.cache.Set([]byte(key), value, 0)
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Del([]byte(key))
	return nil
}
