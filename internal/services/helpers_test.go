package services

import (
	"context"
	"errors"
	"time"

	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/repositories/memory"
	"rideadmin/pkg/logger"
)

var errStoreDown = errors.New("store unavailable")

// failingStore fails every call for the configured collections.
type failingStore struct {
	interfaces.DocumentStore
	collections map[string]bool
}

func newFailingStore(next interfaces.DocumentStore, collections ...string) *failingStore {
	set := make(map[string]bool, len(collections))
	for _, c := range collections {
		set[c] = true
	}
	return &failingStore{DocumentStore: next, collections: set}
}

func (f *failingStore) Get(ctx context.Context, collection, id string) (*interfaces.Document, error) {
	if f.collections[collection] {
		return nil, errStoreDown
	}
	return f.DocumentStore.Get(ctx, collection, id)
}

func (f *failingStore) List(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	if f.collections[collection] {
		return nil, errStoreDown
	}
	return f.DocumentStore.List(ctx, collection)
}

func (f *failingStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*interfaces.Document, error) {
	if f.collections[collection] {
		return nil, errStoreDown
	}
	return f.DocumentStore.Query(ctx, collection, field, value)
}

func (f *failingStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if f.collections[collection] {
		return errStoreDown
	}
	return f.DocumentStore.Update(ctx, collection, id, fields)
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// seededStore holds a small but complete dataset.
func seededStore() *memory.DocumentStore {
	store := memory.NewDocumentStore()

	store.Put(interfaces.CollectionUsers, "u1", map[string]interface{}{
		"first_name": "Anna", "last_name": "Smith", "phone_number": "+1555", "email": "anna@example.com",
		"overallRating": 4.5, "totalRatings": 10,
	})
	store.Put(interfaces.CollectionUsers, "u2", map[string]interface{}{
		"first_name": "Juan", "last_name": "Perez", "isBanned": true,
	})
	store.Put(interfaces.CollectionUsers, "u3", map[string]interface{}{
		"first_name": "Bob", "last_name": "Lee",
	})

	store.Put(interfaces.CollectionRides, "r1", map[string]interface{}{
		"createdAt":      ts("2024-03-05T14:07:09Z"),
		"pickupLocation": "Main St 1, Springfield",
		"destination":    "Airport, Terminal 2",
		"driverName":     "Dave",
		"passengerName":  "Anna",
		"status":         "completed",
	})
	store.Put(interfaces.CollectionRides, "r2", map[string]interface{}{
		"driverName":    "Maria",
		"passengerName": "Bob",
	})

	store.Put(interfaces.CollectionFrauds, "f1", map[string]interface{}{
		"fraudUserId": "u1", "rideId": "r1", "reason": "Fake GPS", "timestamp": ts("2024-03-06T10:00:00Z"),
	})
	store.Put(interfaces.CollectionFrauds, "f2", map[string]interface{}{
		"fraudUserId": "u1", "rideId": "missing",
	})

	return store
}

func testResolver(store interfaces.DocumentStore) ResolverService {
	return NewResolverService(store, nil, 0, time.UTC, logger.NewNop())
}
