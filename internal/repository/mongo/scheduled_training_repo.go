package mongo

import (
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scheduledTrainingCollectionName = "scheduledTrainings"

// mongoScheduledTrainingRepository implements repository.ScheduledTrainingRepository
type mongoScheduledTrainingRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduledTrainingRepository creates a new ScheduledTraining repository backed by MongoDB.
func NewMongoScheduledTrainingRepository(db *mongo.Database) repository.ScheduledTrainingRepository {
	return &mongoScheduledTrainingRepository{
		collection: db.Collection(scheduledTrainingCollectionName),
	}
}

// Create inserts a new assignment. Completed always starts false.
func (r *mongoScheduledTrainingRepository) Create(ctx context.Context, scheduled *domain.ScheduledTraining) (primitive.ObjectID, error) {
	if scheduled.TrainingID == primitive.NilObjectID ||
		scheduled.AthleteID == primitive.NilObjectID ||
		scheduled.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("scheduled training requires trainingId, athleteId and coachId")
	}

	scheduled.ID = primitive.NewObjectID()
	scheduled.Completed = false
	if scheduled.CreatedAt.IsZero() {
		scheduled.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, scheduled)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted scheduled training ID")
	}
	return insertedID, nil
}

// GetByID retrieves an assignment by its ID.
func (r *mongoScheduledTrainingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledTraining, error) {
	var scheduled domain.ScheduledTraining
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&scheduled)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &scheduled, nil
}

// ListInRange returns the assignments of one athlete, or of one coach when
// no athlete is given, whose date falls inside [from, to].
func (r *mongoScheduledTrainingRepository) ListInRange(ctx context.Context, sf repository.ScheduleFilter, from, to time.Time) ([]domain.ScheduledTraining, error) {
	filter := bson.M{
		"scheduledDate": bson.M{"$gte": from, "$lte": to},
	}
	switch {
	case sf.AthleteID != primitive.NilObjectID:
		filter["athleteId"] = sf.AthleteID
	case sf.CoachID != primitive.NilObjectID:
		filter["coachId"] = sf.CoachID
	default:
		return nil, errors.New("schedule filter needs an athlete or a coach")
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	scheduled := []domain.ScheduledTraining{}
	if err = cursor.All(ctx, &scheduled); err != nil {
		return nil, err
	}
	return scheduled, nil
}

// MarkCompleted sets the completed display flag of an assignment.
func (r *mongoScheduledTrainingRepository) MarkCompleted(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"completed": true}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an assignment. Ownership is checked by the caller.
func (r *mongoScheduledTrainingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureScheduledTrainingIndexes creates necessary indexes for the scheduledTrainings collection.
func EnsureScheduledTrainingIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// athlete week view
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index(),
		},
		{
			// coach week view
			Keys:    bson.D{{Key: "coachId", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
