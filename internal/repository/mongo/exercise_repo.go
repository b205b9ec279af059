package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Description == "" || exercise.Username == "" {
		return primitive.NilObjectID, errors.New("exercise description and username are required")
	}

	exercise.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// FindByUsername retrieves exercises logged under username, oldest day first.
func (r *mongoExerciseRepository) FindByUsername(ctx context.Context, username string, f repository.ExerciseFilter) ([]domain.Exercise, error) {
	filter := bson.M{"username": username}

	day := bson.M{}
	if !f.From.IsZero() {
		day["$gte"] = f.From
	}
	if !f.To.IsZero() {
		day["$lte"] = f.To
	}
	if len(day) > 0 {
		filter["day"] = day
	}

	// ObjectIDs grow monotonically, so _id breaks ties in insertion order.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "day", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"username": 0})
	if f.Limit > 0 {
		findOptions.SetLimit(f.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}

	return exercises, nil
}
