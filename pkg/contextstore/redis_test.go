package contextstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmate/shopmate/pkg/catalog"
	"github.com/shopmate/shopmate/pkg/models"
	"github.com/shopmate/shopmate/pkg/testutils"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore("localhost:1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to connect to redis")

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestRedisStoreGetUnknownUser(t *testing.T) {
	store := newTestRedisStore(t)

	uc, err := store.Get(context.Background(), testutils.RandomUserID())
	require.NoError(t, err)
	assert.Equal(t, "neutral", uc.Sentiment)
	assert.Empty(t, uc.LastIntent)
}

func TestRedisStoreUpdateRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	userID := testutils.RandomUserID()

	_, err := store.Update(ctx, userID, func(uc *models.UserContext) {
		uc.LastIntent = catalog.IntentFindProduct
		uc.Sentiment = "positive"
		uc.LastProductsShown = testutils.TestProducts[:2]
	})
	require.NoError(t, err)

	uc, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, catalog.IntentFindProduct, uc.LastIntent)
	assert.Equal(t, "positive", uc.Sentiment)
	require.Len(t, uc.LastProductsShown, 2)
	assert.Equal(t, "iPhone 12", uc.LastProductsShown[0].Name)
	assert.Equal(t, "1", uc.LastProductsShown[0].ID.String())
}

func TestRedisStoreUpdatePreservesOtherFields(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	userID := testutils.RandomUserID()

	_, err := store.Update(ctx, userID, func(uc *models.UserContext) {
		uc.Sentiment = "negative"
	})
	require.NoError(t, err)

	uc, err := store.Update(ctx, userID, func(uc *models.UserContext) {
		uc.LastIntent = catalog.IntentGoodbye
	})
	require.NoError(t, err)

	assert.Equal(t, "negative", uc.Sentiment)
	assert.Equal(t, catalog.IntentGoodbye, uc.LastIntent)
}

func TestRedisStoreUsersAreIsolated(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "alice", func(uc *models.UserContext) {
		uc.LastIntent = catalog.IntentGreeting
	})
	require.NoError(t, err)

	uc, err := store.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, uc.LastIntent)
}
