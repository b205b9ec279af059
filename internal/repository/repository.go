package repository

import (
	"alcyxob/exercise-tracker/internal/domain" // Import our defined domain models
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseFilter narrows a username lookup. Zero values mean "no bound".
type ExerciseFilter struct {
	From  time.Time // inclusive
	To    time.Time // inclusive
	Limit int64
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// FindByUsername returns matching exercises ordered by day, then insertion.
	// The username field is not populated on the results.
	FindByUsername(ctx context.Context, username string, filter ExerciseFilter) ([]domain.Exercise, error)
}
