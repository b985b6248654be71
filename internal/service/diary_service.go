package service

import (
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/repository"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=diary_service.go -destination=../api/diary_mocks_test.go -package=api_test

type SubmitEntryInput struct {
	ScheduledTrainingID primitive.ObjectID      `json:"scheduledTrainingId"`
	Feeling             int                     `json:"feeling"`
	SleepHours          *float64                `json:"sleepHours,omitempty"`
	Notes               string                  `json:"notes"`
	CompletionStatus    domain.CompletionStatus `json:"completionStatus"`
}

func (in SubmitEntryInput) validate() error {
	if in.ScheduledTrainingID == primitive.NilObjectID {
		return invalid("scheduledTrainingId", "select a training to report on")
	}
	if in.Feeling < domain.MinFeeling || in.Feeling > domain.MaxFeeling {
		return invalid("feeling", "must be between 1 and 5")
	}
	if in.SleepHours != nil && *in.SleepHours < 0 {
		return invalid("sleepHours", "must not be negative")
	}
	if !in.CompletionStatus.Valid() {
		return invalid("completionStatus", "must be one of completed, partial, skipped")
	}
	return nil
}

type DiaryService interface {
	// PendingForAthlete returns past assignments inside the lookback window
	// that have no diary entry yet, oldest first.
	PendingForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.ScheduledTraining, error)
	SubmitEntry(ctx context.Context, athleteID primitive.ObjectID, in SubmitEntryInput) (*domain.DiaryEntry, error)
	HistoryForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error)
}

// diaryService implements the DiaryService interface.
type diaryService struct {
	scheduleRepo repository.ScheduledTrainingRepository
	diaryRepo    repository.DiaryEntryRepository
	opts         options
}

func NewDiaryService(
	scheduleRepo repository.ScheduledTrainingRepository,
	diaryRepo repository.DiaryEntryRepository,
	opts ...Option,
) DiaryService {
	return &diaryService{
		scheduleRepo: scheduleRepo,
		diaryRepo:    diaryRepo,
		opts:         newOptions(opts),
	}
}

func (s *diaryService) PendingForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.ScheduledTraining, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "is required")
	}

	now := s.opts.now()
	scheduled, err := s.scheduleRepo.ListInRange(ctx,
		repository.ScheduleFilter{AthleteID: athleteID},
		now.Add(-s.opts.lookback), now,
	)
	if err != nil {
		return nil, backendErr("list scheduled trainings", err)
	}
	if len(scheduled) == 0 {
		return []domain.ScheduledTraining{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(scheduled))
	for _, st := range scheduled {
		ids = append(ids, st.ID)
	}
	reported, err := s.diaryRepo.ReportedScheduledIDs(ctx, ids)
	if err != nil {
		return nil, backendErr("find reported trainings", err)
	}

	pending := make([]domain.ScheduledTraining, 0, len(scheduled))
	for _, st := range scheduled {
		if st.State(now, reported[st.ID]) == domain.StatePending {
			pending = append(pending, st)
		}
	}
	return pending, nil
}

// SubmitEntry stores the entry, then marks the assignment completed when
// the status is completed. The second write is best effort: on failure
// the entry stands and the flag stays stale.
func (s *diaryService) SubmitEntry(ctx context.Context, athleteID primitive.ObjectID, in SubmitEntryInput) (*domain.DiaryEntry, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	scheduled, err := s.pendingAssignment(ctx, athleteID, in.ScheduledTrainingID)
	if err != nil {
		return nil, err
	}

	completed := in.CompletionStatus == domain.StatusCompleted
	entry := &domain.DiaryEntry{
		AthleteID:           athleteID,
		ScheduledTrainingID: scheduled.ID,
		TrainingID:          scheduled.TrainingID,
		Feeling:             in.Feeling,
		SleepHours:          in.SleepHours,
		Notes:               in.Notes,
		CompletionStatus:    in.CompletionStatus,
		Completed:           &completed,
		CreatedAt:           s.opts.now().UTC(),
	}
	if _, err := s.diaryRepo.Create(ctx, entry); err != nil {
		return nil, backendErr("create diary entry", err)
	}
	s.opts.metrics.CounterDiaryEntries.WithLabelValues(string(in.CompletionStatus)).Inc()

	logger := log.WithFields(log.Fields{
		"athlete":   athleteID.Hex(),
		"scheduled": scheduled.ID.Hex(),
		"entry":     entry.ID.Hex(),
		"status":    in.CompletionStatus,
	})

	if completed {
		if err := s.scheduleRepo.MarkCompleted(ctx, scheduled.ID); err != nil {
			s.opts.metrics.CounterFlagUpdateFailures.Inc()
			logger.WithError(err).Warn("diary entry stored but scheduled training not marked completed")
		}
	}

	logger.Info("diary entry submitted")
	return entry, nil
}

// pendingAssignment resolves id to an assignment the athlete can report on.
func (s *diaryService) pendingAssignment(ctx context.Context, athleteID, id primitive.ObjectID) (*domain.ScheduledTraining, error) {
	scheduled, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("scheduledTrainingId", "unknown scheduled training")
		}
		return nil, backendErr("get scheduled training", err)
	}
	if scheduled.AthleteID != athleteID {
		return nil, invalid("scheduledTrainingId", "training is not scheduled for you")
	}

	now := s.opts.now()
	if scheduled.ScheduledDate.Before(now.Add(-s.opts.lookback)) {
		return nil, invalid("scheduledTrainingId", "training is too old to report")
	}

	reported, err := s.diaryRepo.ReportedScheduledIDs(ctx, []primitive.ObjectID{scheduled.ID})
	if err != nil {
		return nil, backendErr("find reported trainings", err)
	}
	switch scheduled.State(now, reported[scheduled.ID]) {
	case domain.StateScheduledFuture:
		return nil, invalid("scheduledTrainingId", "training is not due yet")
	case domain.StateReported:
		return nil, invalid("scheduledTrainingId", "training is already reported")
	}
	return scheduled, nil
}

func (s *diaryService) HistoryForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "is required")
	}
	entries, err := s.diaryRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, backendErr("list diary entries", err)
	}
	return entries, nil
}
