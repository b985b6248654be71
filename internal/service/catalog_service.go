package service

import (
	"alcyxob/training-diary/internal/cache"
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/repository"
	"alcyxob/training-diary/internal/storage"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=catalog_service.go -destination=../api/catalog_mocks_test.go -package=api_test

// TrainingInput is the coach-editable content of a training.
type TrainingInput struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DurationMinutes int               `json:"durationMinutes"`
	Difficulty      domain.Difficulty `json:"difficulty"`
	Category        domain.Category   `json:"category"`
	Exercises       []domain.Exercise `json:"exercises"`
	IsTemplate      bool              `json:"isTemplate"`
}

func (in TrainingInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if in.DurationMinutes < 0 {
		return invalid("durationMinutes", "must not be negative")
	}
	if !in.Difficulty.Valid() {
		return invalid("difficulty", "must be one of easy, medium, hard")
	}
	if !in.Category.Valid() {
		return invalid("category", "unknown category")
	}
	for _, ex := range in.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return invalid("exercises", "every exercise needs a name")
		}
		if ex.Sets < 0 {
			return invalid("exercises", "sets must not be negative")
		}
	}
	return nil
}

// MediaUpload tells the client where to PUT a media file and the URL it
// will be served from once uploaded.
type MediaUpload struct {
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CatalogService interface {
	ListForCoach(ctx context.Context, coachID primitive.ObjectID, templatesOnly bool) ([]domain.Training, error)
	// ListForAthlete returns the trainings of the athlete's coach.
	ListForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Training, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Training, error)
	GetForCoach(ctx context.Context, coachID, id primitive.ObjectID) (*domain.Training, error)
	Create(ctx context.Context, coachID primitive.ObjectID, in TrainingInput) (*domain.Training, error)
	Update(ctx context.Context, coachID, id primitive.ObjectID, in TrainingInput) (*domain.Training, error)
	Delete(ctx context.Context, coachID, id primitive.ObjectID) error
	RequestMediaUpload(ctx context.Context, coachID, trainingID primitive.ObjectID, fileName, contentType string) (*MediaUpload, error)
	// RemoveMedia detaches mediaURL from the training and deletes the
	// object behind it when it lives in our store.
	RemoveMedia(ctx context.Context, coachID, trainingID primitive.ObjectID, mediaURL string) error
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	trainingRepo repository.TrainingRepository
	userRepo     repository.UserRepository
	fileStorage  storage.FileStorage
	cache        *cache.TrainingCache
	opts         options
}

func NewCatalogService(
	trainingRepo repository.TrainingRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	trainingCache *cache.TrainingCache,
	opts ...Option,
) CatalogService {
	return &catalogService{
		trainingRepo: trainingRepo,
		userRepo:     userRepo,
		fileStorage:  fileStorage,
		cache:        trainingCache,
		opts:         newOptions(opts),
	}
}

func (s *catalogService) ListForCoach(ctx context.Context, coachID primitive.ObjectID, templatesOnly bool) ([]domain.Training, error) {
	if coachID == primitive.NilObjectID {
		return nil, invalid("coachId", "is required")
	}
	trainings, err := s.trainingRepo.ListByCoach(ctx, coachID, templatesOnly)
	if err != nil {
		return nil, backendErr("list trainings", err)
	}
	return trainings, nil
}

func (s *catalogService) ListForAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Training, error) {
	athlete, err := s.userRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, backendErr("get athlete", err)
	}
	if !athlete.IsAthlete() || athlete.CoachID == nil {
		return []domain.Training{}, nil
	}

	trainings, err := s.trainingRepo.ListByCoach(ctx, *athlete.CoachID, false)
	if err != nil {
		return nil, backendErr("list trainings", err)
	}
	return trainings, nil
}

// Get looks the training up in the cache first.
func (s *catalogService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Training, error) {
	if s.cache != nil {
		if training, ok := s.cache.Get(id); ok {
			s.opts.metrics.CounterTrainingCacheHits.Inc()
			return training, nil
		}
		s.opts.metrics.CounterTrainingCacheMisses.Inc()
	}

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, backendErr("get training", err)
	}
	if s.cache != nil {
		s.cache.Set(training)
	}
	return training, nil
}

func (s *catalogService) GetForCoach(ctx context.Context, coachID, id primitive.ObjectID) (*domain.Training, error) {
	training, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !training.OwnedBy(coachID) {
		return nil, ErrTrainingAccessDenied
	}
	return training, nil
}

func (s *catalogService) Create(ctx context.Context, coachID primitive.ObjectID, in TrainingInput) (*domain.Training, error) {
	if coachID == primitive.NilObjectID {
		return nil, invalid("coachId", "is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	training := &domain.Training{
		CoachID:         coachID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Difficulty:      in.Difficulty,
		Category:        in.Category,
		Exercises:       in.Exercises,
		IsTemplate:      in.IsTemplate,
	}
	if _, err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, backendErr("create training", err)
	}

	log.WithFields(log.Fields{
		"coach":    coachID.Hex(),
		"training": training.ID.Hex(),
	}).Debug("training created")
	return training, nil
}

func (s *catalogService) Update(ctx context.Context, coachID, id primitive.ObjectID, in TrainingInput) (*domain.Training, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.loadOwned(ctx, coachID, id)
	if err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Description = in.Description
	existing.DurationMinutes = in.DurationMinutes
	existing.Difficulty = in.Difficulty
	existing.Category = in.Category
	existing.Exercises = in.Exercises
	existing.IsTemplate = in.IsTemplate

	if err := s.trainingRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, backendErr("update training", err)
	}
	s.invalidate(id)
	return existing, nil
}

// Delete removes the training. Scheduled trainings pointing at it are kept.
// Deleting a missing training succeeds.
func (s *catalogService) Delete(ctx context.Context, coachID, id primitive.ObjectID) error {
	_, err := s.loadOwned(ctx, coachID, id)
	if errors.Is(err, ErrTrainingNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.trainingRepo.Delete(ctx, id, coachID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return backendErr("delete training", err)
	}
	s.invalidate(id)
	return nil
}

func (s *catalogService) RequestMediaUpload(ctx context.Context, coachID, trainingID primitive.ObjectID, fileName, contentType string) (*MediaUpload, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, invalid("fileName", "is required")
	}
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return nil, invalid("contentType", "only image and video files are accepted")
	}
	if s.fileStorage == nil {
		return nil, backendErr("request media upload", errors.New("file storage is not configured"))
	}

	if _, err := s.loadOwned(ctx, coachID, trainingID); err != nil {
		return nil, err
	}

	key := storage.TrainingMediaKey(trainingID.Hex(), fileName)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, backendErr("presign media upload", err)
	}

	publicURL := s.fileStorage.PublicURL(key)
	if err := s.trainingRepo.AppendMediaURL(ctx, trainingID, coachID, publicURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, backendErr("append media url", err)
	}
	s.invalidate(trainingID)

	return &MediaUpload{
		UploadURL: uploadURL,
		PublicURL: publicURL,
		ObjectKey: key,
		ExpiresAt: s.opts.now().Add(storage.DefaultPresignedURLExpiry),
	}, nil
}

// RemoveMedia succeeds when the url is already gone. The blob delete runs
// after the training is updated and its failure only leaves an orphan object.
func (s *catalogService) RemoveMedia(ctx context.Context, coachID, trainingID primitive.ObjectID, mediaURL string) error {
	if strings.TrimSpace(mediaURL) == "" {
		return invalid("url", "is required")
	}

	training, err := s.loadOwned(ctx, coachID, trainingID)
	if err != nil {
		return err
	}
	if !slices.Contains(training.MediaURLs, mediaURL) {
		return nil
	}

	if err := s.trainingRepo.PullMediaURL(ctx, trainingID, coachID, mediaURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainingNotFound
		}
		return backendErr("remove media url", err)
	}
	s.invalidate(trainingID)

	if s.fileStorage == nil {
		return nil
	}
	key, ok := s.fileStorage.ObjectKey(mediaURL)
	if !ok {
		return nil
	}
	if err := s.fileStorage.DeleteObject(ctx, key); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"training": trainingID.Hex(),
			"key":      key,
		}).Warn("media detached but object not deleted")
	}
	return nil
}

// loadOwned reads the training from the store, bypassing the cache.
func (s *catalogService) loadOwned(ctx context.Context, coachID, id primitive.ObjectID) (*domain.Training, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, backendErr("get training", err)
	}
	if !training.OwnedBy(coachID) {
		return nil, ErrTrainingAccessDenied
	}
	return training, nil
}

func (s *catalogService) invalidate(id primitive.ObjectID) {
	if s.cache != nil {
		s.cache.Invalidate(id)
	}
}
