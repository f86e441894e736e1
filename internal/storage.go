package internal

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/sensefit/internal/blobstore"
	"github.com/2beens/sensefit/internal/config"
	"github.com/2beens/sensefit/internal/db"
)

// Storage holds the blob store selected by config and the clients behind it.
type Storage struct {
	Store       blobstore.Store
	RedisClient *redis.Client // nil when no redis is configured
	DBPool      *pgxpool.Pool // nil unless the postgres blob store is used
}

type OpenStorageParams struct {
	Config           *config.Config
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

// OpenStorage connects to redis when configured (also used for rate limiting),
// to postgres when it backs the blob store, and builds the blob store.
func OpenStorage(ctx context.Context, params OpenStorageParams) (*Storage, error) {
	cfg := params.Config
	s := &Storage{}

	if cfg.BlobStore == config.BlobStorePostgres {
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		s.DBPool = dbPool
	}

	if cfg.RedisHost != "" {
		s.RedisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := s.RedisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	store, err := newBlobStore(ctx, cfg, s.RedisClient, s.DBPool)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("new blob store: %w", err)
	}
	s.Store = store

	return s, nil
}

// Collectors returns the prometheus collectors of the opened clients.
func (s *Storage) Collectors() []prometheus.Collector {
	if s.DBPool == nil {
		return nil
	}
	return []prometheus.Collector{
		pgxpoolprometheus.NewCollector(
			s.DBPool,
			map[string]string{"db_name": s.DBPool.Config().ConnConfig.Database},
		),
	}
}

func (s *Storage) Close() error {
	var err error
	if s.RedisClient != nil {
		if closeErr := s.RedisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}
	if s.DBPool != nil {
		log.Debugln("closing db pool ...")
		s.DBPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
	return err
}

// newBlobStore picks the backend named in the config, optionally behind a read-through cache.
func newBlobStore(
	ctx context.Context,
	cfg *config.Config,
	rdb *redis.Client,
	dbPool *pgxpool.Pool,
) (blobstore.Store, error) {
	var store blobstore.Store
	switch cfg.BlobStore {
	case config.BlobStoreMemory:
		store = blobstore.NewMemoryStore(cfg.BlobCacheSizeMB)
	case config.BlobStoreDisk:
		diskStore, err := blobstore.NewDiskStore(cfg.BlobStoreDiskPath)
		if err != nil {
			return nil, err
		}
		store = diskStore
	case config.BlobStoreRedis:
		if rdb == nil {
			return nil, errors.New("redis blob store selected, but no redis client")
		}
		store = blobstore.NewRedisStore(rdb)
	case config.BlobStorePostgres:
		if dbPool == nil {
			return nil, errors.New("postgres blob store selected, but no db pool")
		}
		pgStore := blobstore.NewPostgresStore(dbPool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure blob store schema: %w", err)
		}
		store = pgStore
	default:
		return nil, fmt.Errorf("unknown blob store: %s", cfg.BlobStore)
	}

	log.Debugf("using [%s] blob store (cache enabled: %t)", cfg.BlobStore, cfg.BlobCacheEnabled)
	if cfg.BlobCacheEnabled && cfg.BlobStore != config.BlobStoreMemory {
		return blobstore.NewCachedStore(store, cfg.BlobCacheSizeMB), nil
	}
	return store, nil
}
