package repository

import (
	"alcyxob/training-diary/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=repository.go -destination=../service/mocks_test.go -package=service_test

var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository reads the accounts the training core depends on.
// Account administration lives elsewhere.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListAthletesByCoach(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
}

type TrainingRepository interface {
	Create(ctx context.Context, training *domain.Training) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Training, error)
	ListByCoach(ctx context.Context, coachID primitive.ObjectID, templatesOnly bool) ([]domain.Training, error)
	Update(ctx context.Context, training *domain.Training) error
	AppendMediaURL(ctx context.Context, id, coachID primitive.ObjectID, url string) error
	// PullMediaURL removes every occurrence of url from the media list.
	PullMediaURL(ctx context.Context, id, coachID primitive.ObjectID, url string) error
	Delete(ctx context.Context, id, coachID primitive.ObjectID) error
}

// ScheduleFilter selects assignments by athlete or by coach. AthleteID
// takes precedence when both are set.
type ScheduleFilter struct {
	CoachID   primitive.ObjectID
	AthleteID primitive.ObjectID
}

type ScheduledTrainingRepository interface {
	Create(ctx context.Context, scheduled *domain.ScheduledTraining) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledTraining, error)
	// ListInRange returns assignments with scheduledDate in [from, to], oldest first.
	ListInRange(ctx context.Context, filter ScheduleFilter, from, to time.Time) ([]domain.ScheduledTraining, error)
	MarkCompleted(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DiaryEntryRepository interface {
	Create(ctx context.Context, entry *domain.DiaryEntry) (primitive.ObjectID, error)
	// ListByAthlete returns all entries of the athlete, newest first.
	ListByAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error)
	// ReportedScheduledIDs returns which of the given assignments already
	// have at least one entry.
	ReportedScheduledIDs(ctx context.Context, scheduledIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error)
}
