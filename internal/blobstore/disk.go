package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/2beens/sensefit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*DiskStore)(nil)

var ErrInvalidKey = errors.New("invalid key")

// DiskStore keeps every key in its own file under rootPath.
type DiskStore struct {
	rootPath string
	mutex    sync.RWMutex
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}
	return &DiskStore{
		rootPath: rootPath,
	}, nil
}

func (s *DiskStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.rootPath, key+".json"), nil
}

func (s *DiskStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "blobstore.disk.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set writes to a temp file, syncs it and renames it over the old one, so a
// crash or power loss mid-write leaves either the old or the new blob.
func (s *DiskStore) Set(ctx context.Context, key string, value []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "blobstore.disk.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key), attribute.Int("size", len(value)))

	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp, err := os.CreateTemp(s.rootPath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Warnf("disk store, remove temp file %s: %s", tmpPath, rmErr)
			}
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	s.syncDir()

	log.Tracef("disk store, key [%s] saved to: %s", key, path)
	return nil
}

// syncDir persists the rename. Not every platform supports syncing a directory,
// so a failure is only logged.
func (s *DiskStore) syncDir() {
	dir, err := os.Open(s.rootPath)
	if err != nil {
		log.Warnf("disk store, open dir for sync: %s", err)
		return
	}
	defer dir.Close()
	if err := dir.Sync(); err != nil {
		log.Debugf("disk store, sync dir: %s", err)
	}
}

func (s *DiskStore) Delete(ctx context.Context, key string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "blobstore.disk.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
