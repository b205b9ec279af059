package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var frozenNow = time.Date(2026, time.October, 17, 15, 4, 5, 0, time.UTC)

func frozenClock() time.Time { return frozenNow }

func newExerciseFixture(t *testing.T) (*fakeUserRepo, *fakeExerciseRepo, ExerciseService, domain.User) {
	t.Helper()
	users := &fakeUserRepo{}
	exercises := &fakeExerciseRepo{}
	user, err := NewUserService(users).CreateUser(context.Background(), "fcc_test")
	require.NoError(t, err)
	return users, exercises, NewExerciseService(users, exercises, frozenClock), *user
}

func TestCreateExercise(t *testing.T) {
	_, exercises, svc, user := newExerciseFixture(t)

	logged, err := svc.CreateExercise(context.Background(), user.ID, "test run", "25", "2024-01-05")
	require.NoError(t, err)

	assert.Equal(t, user, logged.User)
	assert.Equal(t, "test run", logged.Exercise.Description)
	assert.Equal(t, 25, logged.Exercise.Duration)
	assert.Equal(t, "Fri Jan 05 2024", logged.Exercise.Date)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), logged.Exercise.Day)

	require.Len(t, exercises.exercises, 1)
	assert.Equal(t, "fcc_test", exercises.exercises[0].Username)
}

func TestCreateExerciseDefaultsToToday(t *testing.T) {
	_, _, svc, user := newExerciseFixture(t)

	for _, date := range []string{"", "not-a-date", "2024-02-30"} {
		logged, err := svc.CreateExercise(context.Background(), user.ID, "walk", "10", date)
		require.NoError(t, err, "date %q", date)
		assert.Equal(t, "Sat Oct 17 2026", logged.Exercise.Date, "date %q", date)
	}
}

func TestCreateExerciseRejectsNonNumericDuration(t *testing.T) {
	_, exercises, svc, user := newExerciseFixture(t)

	for _, duration := range []string{"abc", "", "0", "-5", "12.5", "10min"} {
		_, err := svc.CreateExercise(context.Background(), user.ID, "run", duration, "2024-01-05")
		require.ErrorIs(t, err, ErrValidationFailed, "duration %q", duration)
		assert.EqualError(t, err, "duration must be a number")
	}
	assert.Empty(t, exercises.exercises)
}

func TestCreateExerciseRequiresDescription(t *testing.T) {
	_, exercises, svc, user := newExerciseFixture(t)

	_, err := svc.CreateExercise(context.Background(), user.ID, " ", "10", "")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.EqualError(t, err, "description is required")
	assert.Empty(t, exercises.exercises)
}

func TestCreateExerciseUnknownUser(t *testing.T) {
	_, exercises, svc, _ := newExerciseFixture(t)

	_, err := svc.CreateExercise(context.Background(), primitive.NewObjectID(), "run", "abc", "")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, exercises.exercises)
}

func TestCreateExerciseStorageFailure(t *testing.T) {
	users, _, _, user := newExerciseFixture(t)
	svc := NewExerciseService(users, &fakeExerciseRepo{err: errStorageDown}, frozenClock)

	_, err := svc.CreateExercise(context.Background(), user.ID, "run", "5", "")
	require.ErrorIs(t, err, errStorageDown)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestParseDuration(t *testing.T) {
	accepted := map[string]int{
		" 45 ":  45,
		"25":    25,
		"25.0":  25,
		"1e2":   100,
		"30.00": 30,
	}
	for raw, want := range accepted {
		minutes, err := ParseDuration(raw)
		require.NoError(t, err, "duration %q", raw)
		assert.Equal(t, want, minutes, "duration %q", raw)
	}

	for _, raw := range []string{"12.5", "0.0", "-3.0", "NaN", "Inf", "1e300", "abc"} {
		_, err := ParseDuration(raw)
		assert.ErrorIs(t, err, ErrValidationFailed, "duration %q", raw)
	}
}

func TestCreateExerciseWholeDecimalDuration(t *testing.T) {
	_, exercises, svc, user := newExerciseFixture(t)

	for _, duration := range []string{"25.0", "1e2"} {
		_, err := svc.CreateExercise(context.Background(), user.ID, "run", duration, "2024-01-05")
		require.NoError(t, err, "duration %q", duration)
	}
	require.Len(t, exercises.exercises, 2)
	assert.Equal(t, 25, exercises.exercises[0].Duration)
	assert.Equal(t, 100, exercises.exercises[1].Duration)
}
