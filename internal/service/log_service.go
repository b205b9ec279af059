package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogQuery holds the optional, unparsed log filters as received from a caller.
type LogQuery struct {
	Limit string
	From  string
	To    string
}

// LogService builds display-ready exercise logs.
type LogService interface {
	GetLog(ctx context.Context, userID primitive.ObjectID, query LogQuery) (*domain.Log, error)
}

type logService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewLogService creates a new instance of logService.
func NewLogService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) LogService {
	return &logService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// GetLog returns the user's exercises, oldest day first, capped by limit and
// bounded by from/to (both inclusive). A user with no matches gets an empty log.
func (s *logService) GetLog(ctx context.Context, userID primitive.ObjectID, query LogQuery) (*domain.Log, error) {
	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	filter, err := parseLogQuery(query)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.FindByUsername(ctx, user.Username, filter)
	if err != nil {
		return nil, fmt.Errorf("find exercises for %s: %w", user.ID.Hex(), err)
	}

	entries := make([]domain.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, domain.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        domain.FormatDisplay(e.Date),
		})
	}

	observability.RecordLogServed(len(entries))
	return &domain.Log{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID.Hex(),
		Log:      entries,
	}, nil
}

// parseLogQuery ignores a limit that is not a positive integer. Dates that
// are present but unparseable are rejected.
func parseLogQuery(q LogQuery) (repository.ExerciseFilter, error) {
	var filter repository.ExerciseFilter

	if n, err := strconv.ParseInt(strings.TrimSpace(q.Limit), 10, 64); err == nil && n > 0 {
		filter.Limit = n
	}

	if strings.TrimSpace(q.From) != "" {
		from, ok := domain.ParseDate(q.From)
		if !ok {
			return filter, invalid("from", "from must be a date")
		}
		filter.From = from
	}
	if strings.TrimSpace(q.To) != "" {
		to, ok := domain.ParseDate(q.To)
		if !ok {
			return filter, invalid("to", "to must be a date")
		}
		filter.To = to
	}

	return filter, nil
}
