package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedExercise pairs a stored exercise with the user it was logged for.
type LoggedExercise struct {
	User     domain.User
	Exercise domain.Exercise
}

// ExerciseService records exercises against existing users.
type ExerciseService interface {
	CreateExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*LoggedExercise, error)
}

type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          Clock
}

// NewExerciseService creates a new instance of exerciseService. A nil clock
// uses the system time.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository, now Clock) ExerciseService {
	if now == nil {
		now = systemClock
	}
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          now,
	}
}

// CreateExercise resolves the user, validates input and stores the exercise
// under the user's current username. Nothing is written when validation fails.
func (s *exerciseService) CreateExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*LoggedExercise, error) {
	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	minutes, err := ParseDuration(duration)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalid("description", "description is required")
	}

	day := domain.NormalizeDate(date, s.now())
	exercise := &domain.Exercise{
		Description: description,
		Duration:    minutes,
		Date:        domain.FormatNormalized(day),
		Day:         day,
		Username:    user.Username,
	}

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	exercise.ID = id

	observability.RecordExerciseLogged(minutes)
	return &LoggedExercise{User: *user, Exercise: *exercise}, nil
}

// maxDurationMinutes bounds float input before it is converted to int.
const maxDurationMinutes = math.MaxInt32

// ParseDuration reads a whole, positive number of minutes. Decimal and
// exponent forms are accepted when their value is whole, e.g. "25.0" or "1e2".
func ParseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if minutes, err := strconv.Atoi(raw); err == nil {
		if minutes <= 0 {
			return 0, errInvalidDuration()
		}
		return minutes, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > maxDurationMinutes || math.Trunc(f) != f {
		return 0, errInvalidDuration()
	}
	return int(f), nil
}

func errInvalidDuration() error {
	return invalid("duration", "duration must be a number")
}
