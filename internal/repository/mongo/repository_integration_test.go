//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"

	"github.com/stretchr/testify/require"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := mongocontainer.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := ConnectDB(uri, 30*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = DisconnectDB(client) })

	db := client.Database("exercise_tracker_test")
	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoUserRepository(setupDatabase(t))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	id, err := repo.Create(ctx, &domain.User{Username: "fcc_test"})
	require.NoError(t, err)
	require.NotEqual(t, primitive.NilObjectID, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "fcc_test", got.Username)

	_, err = repo.GetByID(ctx, primitive.NewObjectID())
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Create(ctx, &domain.User{Username: "fcc_test"})
	require.NoError(t, err, "usernames are not unique")

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, first, second)
}

func TestExerciseRepositoryFindByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoExerciseRepository(setupDatabase(t))

	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	seed := []domain.Exercise{
		{Description: "late", Duration: 10, Day: day(20), Date: domain.FormatNormalized(day(20)), Username: "alice"},
		{Description: "early", Duration: 20, Day: day(3), Date: domain.FormatNormalized(day(3)), Username: "alice"},
		{Description: "middle", Duration: 30, Day: day(10), Date: domain.FormatNormalized(day(10)), Username: "alice"},
		{Description: "other user", Duration: 40, Day: day(10), Date: domain.FormatNormalized(day(10)), Username: "bob"},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	all, err := repo.FindByUsername(ctx, "alice", repository.ExerciseFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "early", all[0].Description)
	require.Equal(t, "middle", all[1].Description)
	require.Equal(t, "late", all[2].Description)
	for _, e := range all {
		require.Empty(t, e.Username, "username is projected out")
	}

	limited, err := repo.FindByUsername(ctx, "alice", repository.ExerciseFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "early", limited[0].Description)

	ranged, err := repo.FindByUsername(ctx, "alice", repository.ExerciseFilter{From: day(10), To: day(20)})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	require.Equal(t, "middle", ranged[0].Description)

	none, err := repo.FindByUsername(ctx, "nobody", repository.ExerciseFilter{})
	require.NoError(t, err)
	require.Empty(t, none)
}
