package interfaces

import (
	"context"
	"errors"
)

const (
	CollectionUsers       = "users"
	CollectionRides       = "rides"
	CollectionEmergencies = "emergencies"
	CollectionFrauds      = "frauds"
	CollectionControls    = "controls"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a schemaless record as returned by the backing store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DocumentStore is the subset of document database operations the admin
// backend relies on. List returns documents in the store's natural order.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string) ([]*Document, error)
	Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Close() error
}
