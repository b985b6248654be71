package service

import (
	"alcyxob/training-diary/internal/repository"
	"alcyxob/training-diary/internal/stats"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=statistics_service.go -destination=../api/statistics_mocks_test.go -package=api_test

type StatisticsService interface {
	ForAthlete(ctx context.Context, athleteID primitive.ObjectID, timeRange string) (*stats.Statistics, error)
	ForManagedAthlete(ctx context.Context, coachID, athleteID primitive.ObjectID, timeRange string) (*stats.Statistics, error)
}

// statisticsService implements the StatisticsService interface. It only reads.
type statisticsService struct {
	diaryRepo repository.DiaryEntryRepository
	userRepo  repository.UserRepository
	opts      options
}

func NewStatisticsService(
	diaryRepo repository.DiaryEntryRepository,
	userRepo repository.UserRepository,
	opts ...Option,
) StatisticsService {
	return &statisticsService{
		diaryRepo: diaryRepo,
		userRepo:  userRepo,
		opts:      newOptions(opts),
	}
}

func (s *statisticsService) ForAthlete(ctx context.Context, athleteID primitive.ObjectID, timeRange string) (*stats.Statistics, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "is required")
	}
	if timeRange == "" {
		timeRange = string(stats.RangeWeek)
	}
	r, err := stats.ParseTimeRange(timeRange)
	if err != nil {
		return nil, invalid("range", err.Error())
	}

	entries, err := s.diaryRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, backendErr("list diary entries", err)
	}
	result := stats.Compute(entries, r, s.opts.now())
	return &result, nil
}

func (s *statisticsService) ForManagedAthlete(ctx context.Context, coachID, athleteID primitive.ObjectID, timeRange string) (*stats.Statistics, error) {
	if _, err := managedAthlete(ctx, s.userRepo, coachID, athleteID); err != nil {
		return nil, err
	}
	return s.ForAthlete(ctx, athleteID, timeRange)
}
