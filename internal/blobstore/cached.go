package blobstore

import (
	"context"
	"errors"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Store = (*CachedStore)(nil)

const defaultCacheExpireSeconds = 60 * 10

// CachedStore is a read-through cache in front of another store.
// Writes go to the underlying store first, then invalidate the cached key.
// A read only fills the cache if no write to the same key finished meanwhile.
type CachedStore struct {
	store         Store
	cache         *freecache.Cache
	expireSeconds int

	mutex       sync.Mutex
	generations map[string]uint64
}

func NewCachedStore(store Store, sizeMB int) *CachedStore {
	if sizeMB <= 0 {
		sizeMB = 50
	}
	megabyte := 1024 * 1024
	return &CachedStore{
		store:         store,
		cache:         freecache.NewCache(sizeMB * megabyte),
		expireSeconds: defaultCacheExpireSeconds,
		generations:   map[string]uint64{},
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("blob [%s] found in cache", key)
		return value, nil
	}

	s.mutex.Lock()
	generation := s.generations[key]
	s.mutex.Unlock()

	value, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.generations[key] != generation {
		log.Tracef("blob [%s] changed while reading, not caching", key)
		return value, nil
	}
	if err := s.cache.Set([]byte(key), value, s.expireSeconds); err != nil {
		// too large for the cache, not a problem, just slower
		log.Debugf("failed to cache blob [%s]: %s", key, err)
	}
	return value, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	// invalidate even on error, the write might have been partially applied
	defer s.invalidate(key)
	return s.store.Set(ctx, key, value)
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	defer s.invalidate(key)
	return s.store.Delete(ctx, key)
}

func (s *CachedStore) invalidate(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.generations[key]++
	s.cache.Del([]byte(key))
}

// IsNotFound reports whether err means the key is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
