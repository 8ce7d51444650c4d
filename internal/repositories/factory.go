package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rideadmin/internal/config"
	"rideadmin/internal/repositories/firestore"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/repositories/memory"
	"rideadmin/internal/repositories/mongodb"
	"rideadmin/pkg/database"
)

var ErrFirebaseRequired = errors.New("firestore driver requires an initialized firebase app")

// NewDocumentStore opens the configured backend and applies the per-operation timeout.
func NewDocumentStore(ctx context.Context, cfg *config.DatabaseConfig, fb *database.Firebase) (interfaces.DocumentStore, error) {
	var store interfaces.DocumentStore

	switch cfg.Driver {
	case config.StoreDriverFirestore:
		if fb == nil || fb.Firestore == nil {
			return nil, ErrFirebaseRequired
		}
		store = firestore.NewDocumentStore(fb.Firestore)

	case config.StoreDriverMongoDB:
		db, err := database.NewMongoDB(&database.MongoConfig{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			MaxPoolSize:    cfg.Mongo.MaxPoolSize,
			MinPoolSize:    cfg.Mongo.MinPoolSize,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			SocketTimeout:  cfg.Mongo.SocketTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		if err := database.EnsureIndexes(ctx, db.Database); err != nil {
			db.Close()
			return nil, err
		}
		store = mongodb.NewDocumentStore(db.Database)

	case config.StoreDriverMemory:
		mem := memory.NewDocumentStore()
		if cfg.MemorySeedFile != "" {
			f, err := os.Open(cfg.MemorySeedFile)
			if err != nil {
				return nil, fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()
			if err := mem.LoadSeed(f); err != nil {
				return nil, err
			}
		}
		store = mem

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	return WithTimeout(store, cfg.OperationTimeout), nil
}
