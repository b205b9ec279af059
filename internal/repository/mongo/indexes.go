package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureExerciseIndexes creates the index backing log queries.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}, {Key: "day", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("username_day"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes on %s: %w", collection.Name(), err)
	}
	return nil
}

// EnsureIndexes creates indexes for every collection the service owns.
// Queries still work without them, so callers usually only log the error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName))
}
