package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rideadmin/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type documentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) interfaces.DocumentStore {
	return &documentStore{
		db: db,
	}
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (*interfaces.Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": idFilter(id)}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, interfaces.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}

	return toDocument(raw), nil
}

func (s *documentStore) List(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	return s.find(ctx, collection, bson.M{})
}

func (s *documentStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*interfaces.Document, error) {
	return s.find(ctx, collection, bson.M{field: value})
}

func (s *documentStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	result, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": idFilter(id)},
		bson.M{"$set": fields},
	)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, interfaces.ErrDocumentNotFound)
	}

	return nil
}

func (s *documentStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.db.Client().Disconnect(ctx)
}

func (s *documentStore) find(ctx context.Context, collection string, filter bson.M) ([]*interfaces.Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]*interfaces.Document, 0)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		docs = append(docs, toDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", collection, err)
	}

	return docs, nil
}

// idFilter accepts both ObjectID hex strings and plain string ids.
func idFilter(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func toDocument(raw bson.M) *interfaces.Document {
	doc := &interfaces.Document{
		Data: make(map[string]interface{}, len(raw)),
	}

	switch id := raw["_id"].(type) {
	case primitive.ObjectID:
		doc.ID = id.Hex()
	case string:
		doc.ID = id
	case nil:
	default:
		doc.ID = fmt.Sprint(id)
	}

	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc.Data[k] = normalize(v)
	}

	return doc
}

// normalize unwraps bson container types so callers only see plain maps and slices.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}
