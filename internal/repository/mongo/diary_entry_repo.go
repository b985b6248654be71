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

const diaryEntryCollectionName = "trainingDiaryEntries"

// mongoDiaryEntryRepository implements repository.DiaryEntryRepository
type mongoDiaryEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoDiaryEntryRepository creates a new DiaryEntry repository backed by MongoDB.
func NewMongoDiaryEntryRepository(db *mongo.Database) repository.DiaryEntryRepository {
	return &mongoDiaryEntryRepository{
		collection: db.Collection(diaryEntryCollectionName),
	}
}

// Create appends a diary entry.
func (r *mongoDiaryEntryRepository) Create(ctx context.Context, entry *domain.DiaryEntry) (primitive.ObjectID, error) {
	if entry.AthleteID == primitive.NilObjectID || entry.ScheduledTrainingID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("diary entry requires athleteId and scheduledTrainingId")
	}

	entry.ID = primitive.NewObjectID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted diary entry ID")
	}
	return insertedID, nil
}

// ListByAthlete returns every entry of the athlete, newest first, with the
// completion status resolved for legacy documents.
func (r *mongoDiaryEntryRepository) ListByAthlete(ctx context.Context, athleteID primitive.ObjectID) ([]domain.DiaryEntry, error) {
	filter := bson.M{"athleteId": athleteID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.DiaryEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// ReportedScheduledIDs returns the subset of scheduledIDs that have at
// least one entry.
func (r *mongoDiaryEntryRepository) ReportedScheduledIDs(ctx context.Context, scheduledIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	reported := make(map[primitive.ObjectID]bool, len(scheduledIDs))
	if len(scheduledIDs) == 0 {
		return reported, nil
	}

	filter := bson.M{"scheduledTrainingId": bson.M{"$in": scheduledIDs}}
	values, err := r.collection.Distinct(ctx, "scheduledTrainingId", filter)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			reported[id] = true
		}
	}
	return reported, nil
}

// EnsureDiaryEntryIndexes creates necessary indexes for the trainingDiaryEntries collection.
func EnsureDiaryEntryIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "scheduledTrainingId", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
