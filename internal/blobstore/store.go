package blobstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is an opaque key/value blob store.
// Get returns ErrNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Kind names a store backend in the config.
type Kind string

const (
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
	KindDisk     Kind = "disk"
	KindMemory   Kind = "memory"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindRedis,
		KindPostgres,
		KindDisk,
		KindMemory:
		return true
	default:
		return false
	}
}
