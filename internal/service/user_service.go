package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService creates and lists users.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser stores a new user. Usernames are trimmed and must not be empty;
// duplicates are allowed.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalid("username", "username is required")
	}

	user := &domain.User{Username: username}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	observability.RecordUserCreated()
	return user, nil
}

// ListUsers returns every user in storage order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// resolveUser returns ErrUserNotFound when no user has the given id.
func resolveUser(ctx context.Context, repo repository.UserRepository, id primitive.ObjectID) (*domain.User, error) {
	if id == primitive.NilObjectID {
		return nil, ErrUserNotFound
	}
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id.Hex(), err)
	}
	return user, nil
}
