package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rideadmin/internal/config"
	"rideadmin/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentStore_MemoryWithSeed(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(`{"users":[{"id":"u1","first_name":"Anna"}]}`), 0o600))

	store, err := NewDocumentStore(context.Background(), &config.DatabaseConfig{
		Driver:           config.StoreDriverMemory,
		OperationTimeout: time.Second,
		MemorySeedFile:   seed,
	}, nil)
	require.NoError(t, err)
	defer store.Close()

	doc, err := store.Get(context.Background(), interfaces.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", doc.Data["first_name"])
}

func TestNewDocumentStore_MissingSeedFile(t *testing.T) {
	_, err := NewDocumentStore(context.Background(), &config.DatabaseConfig{
		Driver:         config.StoreDriverMemory,
		MemorySeedFile: filepath.Join(t.TempDir(), "absent.json"),
	}, nil)
	assert.Error(t, err)
}

func TestNewDocumentStore_FirestoreNeedsApp(t *testing.T) {
	_, err := NewDocumentStore(context.Background(), &config.DatabaseConfig{Driver: config.StoreDriverFirestore}, nil)
	assert.ErrorIs(t, err, ErrFirebaseRequired)
}

func TestNewDocumentStore_UnknownDriver(t *testing.T) {
	_, err := NewDocumentStore(context.Background(), &config.DatabaseConfig{Driver: "cassandra"}, nil)
	assert.Error(t, err)
}
