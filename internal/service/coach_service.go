package service

import (
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=coach_service.go -destination=../api/coach_mocks_test.go -package=api_test

type CoachService interface {
	Athletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	// AthleteHistory is the diary of an athlete the coach manages, newest first.
	AthleteHistory(ctx context.Context, coachID, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error)
}

// coachService implements the CoachService interface.
type coachService struct {
	userRepo  repository.UserRepository
	diaryRepo repository.DiaryEntryRepository
}

func NewCoachService(userRepo repository.UserRepository, diaryRepo repository.DiaryEntryRepository) CoachService {
	return &coachService{
		userRepo:  userRepo,
		diaryRepo: diaryRepo,
	}
}

func (s *coachService) Athletes(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	if coachID == primitive.NilObjectID {
		return nil, invalid("coachId", "is required")
	}
	athletes, err := s.userRepo.ListAthletesByCoach(ctx, coachID)
	if err != nil {
		return nil, backendErr("list athletes", err)
	}
	return athletes, nil
}

func (s *coachService) AthleteHistory(ctx context.Context, coachID, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error) {
	if _, err := managedAthlete(ctx, s.userRepo, coachID, athleteID); err != nil {
		return nil, err
	}
	entries, err := s.diaryRepo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, backendErr("list diary entries", err)
	}
	return entries, nil
}

// managedAthlete loads athleteID and checks that coachID coaches them.
func managedAthlete(ctx context.Context, users repository.UserRepository, coachID, athleteID primitive.ObjectID) (*domain.User, error) {
	if athleteID == primitive.NilObjectID {
		return nil, invalid("athleteId", "is required")
	}
	athlete, err := users.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, backendErr("get athlete", err)
	}
	if !athlete.IsAthlete() {
		return nil, ErrAthleteNotFound
	}
	if !athlete.CoachedBy(coachID) {
		return nil, ErrAthleteNotManaged
	}
	return athlete, nil
}
