package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	Collection string
	Field      string
}

// Lookups the admin backend issues by field rather than by id.
var adminIndexes = []indexSpec{
	{Collection: "frauds", Field: "fraudUserId"},
}

// EnsureIndexes creates the secondary indexes the admin queries rely on.
// Creating an index that already exists is a no-op in MongoDB.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range adminIndexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: spec.Field, Value: 1}},
			Options: options.Index().SetName(fmt.Sprintf("%s_%s_idx", spec.Collection, spec.Field)),
		}
		if _, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", spec.Collection, spec.Field, err)
		}
	}
	return nil
}
