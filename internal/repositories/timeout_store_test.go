package repositories

import (
	"context"
	"testing"
	"time"

	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingStore struct {
	interfaces.DocumentStore
}

func (blockingStore) List(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout_BoundsSlowOperations(t *testing.T) {
	store := WithTimeout(blockingStore{}, 20*time.Millisecond)

	start := time.Now()
	_, err := store.List(context.Background(), interfaces.CollectionUsers)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWithTimeout_ZeroDisables(t *testing.T) {
	inner := memory.NewDocumentStore()
	assert.Same(t, inner, WithTimeout(inner, 0))
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	inner := memory.NewDocumentStore()
	inner.Put(interfaces.CollectionUsers, "u1", map[string]interface{}{"first_name": "Anna"})
	store := WithTimeout(inner, time.Second)

	doc, err := store.Get(context.Background(), interfaces.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", doc.Data["first_name"])

	require.NoError(t, store.Update(context.Background(), interfaces.CollectionUsers, "u1", map[string]interface{}{"isBanned": true}))
	docs, err := store.Query(context.Background(), interfaces.CollectionUsers, "isBanned", true)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
