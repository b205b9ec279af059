package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStorageDown = errors.New("storage unavailable")

type fakeUserRepo struct {
	users []domain.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.User(nil), f.users...), nil
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
	err       error
}

func (f *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	exercise.ID = primitive.NewObjectID()
	f.exercises = append(f.exercises, *exercise)
	return exercise.ID, nil
}

func (f *fakeExerciseRepo) FindByUsername(ctx context.Context, username string, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Exercise{}
	for _, e := range f.exercises {
		if e.Username != username {
			continue
		}
		if !filter.From.IsZero() && e.Day.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && e.Day.After(filter.To) {
			continue
		}
		e.Username = ""
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
