//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"

	"github.com/2beens/sensefit/internal/blobstore"
	"github.com/2beens/sensefit/internal/db"
	testingpkg "github.com/2beens/sensefit/pkg/testing"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) checkStoreRoundTrip(ctx context.Context, store blobstore.Store, key string) {
	t := s.T()

	_, err := store.Get(ctx, key)
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Set(ctx, key, []byte(`[{"id":"a"}]`)))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"a"}]`, string(got))

	// overwrite
	require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	// deleting a missing key is fine
	require.NoError(t, store.Delete(ctx, key))
}

func (s *IntegrationTestSuite) TestRedisStore() {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(s.T(), s.config.RedisPort)
	store := blobstore.NewRedisStore(rdb)
	s.checkStoreRoundTrip(ctx, store, "redis-roundtrip")
}

func (s *IntegrationTestSuite) TestPostgresStore() {
	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: s.config.PostgresHost,
		DBPort: s.config.PostgresPort,
		DBName: s.config.PostgresDBName,
	})
	require.NoError(s.T(), err)
	defer pool.Close()

	store := blobstore.NewPostgresStore(pool)
	require.NoError(s.T(), store.EnsureSchema(ctx))
	// idempotent
	require.NoError(s.T(), store.EnsureSchema(ctx))

	key := fmt.Sprintf("pg-roundtrip-%d", s.config.Port)
	s.checkStoreRoundTrip(ctx, store, key)

	// cached in front of postgres sees its own writes
	cached := blobstore.NewCachedStore(store, 1)
	s.checkStoreRoundTrip(ctx, cached, key+"-cached")
}
