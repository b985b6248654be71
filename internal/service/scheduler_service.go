package service

import (
	"alcyxob/training-diary/internal/calendar"
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/repository"
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=scheduler_service.go -destination=../api/scheduler_mocks_test.go -package=api_test

// Selector picks whose schedule to read. AthleteID wins over CoachID; when
// both are set the athlete must be managed by the coach.
type Selector struct {
	CoachID   primitive.ObjectID
	AthleteID primitive.ObjectID
}

type DayBucket struct {
	Date      string                     `json:"date"`
	Trainings []domain.ScheduledTraining `json:"trainings"`
}

type WeekView struct {
	WeekStart time.Time   `json:"weekStart"`
	WeekEnd   time.Time   `json:"weekEnd"`
	Days      []DayBucket `json:"days"`
}

type SchedulerService interface {
	// Schedule assigns a training to an athlete on the calendar day of date.
	// Duplicates for the same day are allowed.
	Schedule(ctx context.Context, coachID, trainingID, athleteID primitive.ObjectID, date time.Time) (*domain.ScheduledTraining, error)
	// ListForWeek returns the assignments of the week holding ref's calendar
	// date, taken as a day in the configured location. A zero ref is today.
	ListForWeek(ctx context.Context, sel Selector, ref time.Time) ([]domain.ScheduledTraining, error)
	Week(ctx context.Context, sel Selector, ref time.Time) (*WeekView, error)
	// Unschedule deletes an assignment. A missing id is not an error.
	Unschedule(ctx context.Context, coachID, id primitive.ObjectID) error
}

// schedulerService implements the SchedulerService interface.
type schedulerService struct {
	scheduleRepo repository.ScheduledTrainingRepository
	userRepo     repository.UserRepository
	catalog      CatalogService
	opts         options
}

func NewSchedulerService(
	scheduleRepo repository.ScheduledTrainingRepository,
	userRepo repository.UserRepository,
	catalog CatalogService,
	opts ...Option,
) SchedulerService {
	return &schedulerService{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		catalog:      catalog,
		opts:         newOptions(opts),
	}
}

func (s *schedulerService) Schedule(ctx context.Context, coachID, trainingID, athleteID primitive.ObjectID, date time.Time) (*domain.ScheduledTraining, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "select an athlete before scheduling")
	}
	if trainingID == primitive.NilObjectID {
		return nil, invalid("trainingId", "is required")
	}
	if date.IsZero() {
		return nil, invalid("date", "is required")
	}

	if _, err := s.catalog.GetForCoach(ctx, coachID, trainingID); err != nil {
		return nil, err
	}
	if _, err := managedAthlete(ctx, s.userRepo, coachID, athleteID); err != nil {
		return nil, err
	}

	scheduled := &domain.ScheduledTraining{
		TrainingID:    trainingID,
		CoachID:       coachID,
		AthleteID:     athleteID,
		ScheduledDate: s.localDay(date),
		CreatedAt:     s.opts.now().UTC(),
	}
	if _, err := s.scheduleRepo.Create(ctx, scheduled); err != nil {
		return nil, backendErr("create scheduled training", err)
	}
	s.opts.metrics.CounterScheduled.Inc()

	log.WithFields(log.Fields{
		"coach":     coachID.Hex(),
		"athlete":   athleteID.Hex(),
		"training":  trainingID.Hex(),
		"scheduled": scheduled.ID.Hex(),
		"day":       calendar.DayKey(scheduled.ScheduledDate),
	}).Info("training scheduled")
	return scheduled, nil
}

func (s *schedulerService) ListForWeek(ctx context.Context, sel Selector, ref time.Time) ([]domain.ScheduledTraining, error) {
	filter, err := s.resolve(ctx, sel)
	if err != nil {
		return nil, err
	}

	ref = s.localDay(ref)
	from, to := calendar.WeekStart(ref), calendar.WeekEnd(ref)
	scheduled, err := s.scheduleRepo.ListInRange(ctx, filter, from, to)
	if err != nil {
		return nil, backendErr("list scheduled trainings", err)
	}

	// the store filters already; this keeps the boundary exact whatever
	// precision it compares at
	inWeek := make([]domain.ScheduledTraining, 0, len(scheduled))
	for _, st := range scheduled {
		if calendar.InRange(st.ScheduledDate, from, to) {
			inWeek = append(inWeek, st)
		}
	}
	return inWeek, nil
}

func (s *schedulerService) Week(ctx context.Context, sel Selector, ref time.Time) (*WeekView, error) {
	scheduled, err := s.ListForWeek(ctx, sel, ref)
	if err != nil {
		return nil, err
	}
	ref = s.localDay(ref)
	return &WeekView{
		WeekStart: calendar.WeekStart(ref),
		WeekEnd:   calendar.WeekEnd(ref),
		Days:      GroupByDay(scheduled, ref),
	}, nil
}

func (s *schedulerService) Unschedule(ctx context.Context, coachID, id primitive.ObjectID) error {
	scheduled, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return backendErr("get scheduled training", err)
	}
	if scheduled.CoachID != coachID {
		return ErrScheduleAccessDenied
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return backendErr("delete scheduled training", err)
	}
	s.opts.metrics.CounterUnscheduled.Inc()
	log.WithFields(log.Fields{"coach": coachID.Hex(), "scheduled": id.Hex()}).Info("training unscheduled")
	return nil
}

// localDay keeps ref's calendar date and moves it to midday in the
// configured location.
func (s *schedulerService) localDay(ref time.Time) time.Time {
	if ref.IsZero() {
		ref = s.opts.now().In(s.opts.location)
	}
	y, m, d := ref.Date()
	return calendar.Midday(time.Date(y, m, d, 0, 0, 0, 0, s.opts.location))
}

func (s *schedulerService) resolve(ctx context.Context, sel Selector) (repository.ScheduleFilter, error) {
	switch {
	case sel.AthleteID != primitive.NilObjectID:
		if sel.CoachID != primitive.NilObjectID {
			if _, err := managedAthlete(ctx, s.userRepo, sel.CoachID, sel.AthleteID); err != nil {
				return repository.ScheduleFilter{}, err
			}
		}
		return repository.ScheduleFilter{AthleteID: sel.AthleteID}, nil
	case sel.CoachID != primitive.NilObjectID:
		return repository.ScheduleFilter{CoachID: sel.CoachID}, nil
	default:
		return repository.ScheduleFilter{}, invalid("selector", "a coach or an athlete is required")
	}
}

// TrainingsOnDay returns the assignments falling on day's calendar date.
// Dates are compared by the UTC date of their midday in day's location.
func TrainingsOnDay(scheduled []domain.ScheduledTraining, day time.Time) []domain.ScheduledTraining {
	key := calendar.DayKey(calendar.Midday(day))
	onDay := []domain.ScheduledTraining{}
	for _, st := range scheduled {
		if calendar.DayKey(calendar.Midday(st.ScheduledDate.In(day.Location()))) == key {
			onDay = append(onDay, st)
		}
	}
	return onDay
}

// GroupByDay splits scheduled into seven buckets for the week of ref,
// Monday first. Empty days get an empty bucket.
func GroupByDay(scheduled []domain.ScheduledTraining, ref time.Time) []DayBucket {
	days := calendar.WeekDays(ref)
	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, DayBucket{
			Date:      day.Format(calendar.DayLayout),
			Trainings: TrainingsOnDay(scheduled, day),
		})
	}
	return buckets
}
