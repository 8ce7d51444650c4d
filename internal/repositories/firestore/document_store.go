package firestore

import (
	"context"
	"fmt"

	"rideadmin/internal/repositories/interfaces"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type documentStore struct {
	client *gcfirestore.Client
}

func NewDocumentStore(client *gcfirestore.Client) interfaces.DocumentStore {
	return &documentStore{
		client: client,
	}
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (*interfaces.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, interfaces.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, interfaces.ErrDocumentNotFound)
	}

	return toDocument(snap), nil
}

func (s *documentStore) List(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	return toDocuments(snaps), nil
}

func (s *documentStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*interfaces.Document, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}

	return toDocuments(snaps), nil
}

func (s *documentStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]gcfirestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, gcfirestore.Update{Path: path, Value: value})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, interfaces.ErrDocumentNotFound)
		}
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *documentStore) Close() error {
	return s.client.Close()
}

func toDocuments(snaps []*gcfirestore.DocumentSnapshot) []*interfaces.Document {
	docs := make([]*interfaces.Document, 0, len(snaps))
	for _, snap := range snaps {
		if snap.Exists() {
			docs = append(docs, toDocument(snap))
		}
	}
	return docs
}

func toDocument(snap *gcfirestore.DocumentSnapshot) *interfaces.Document {
	data := snap.Data()
	if data == nil {
		data = make(map[string]interface{})
	}
	return &interfaces.Document{
		ID:   snap.Ref.ID,
		Data: data,
	}
}
