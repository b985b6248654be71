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

const trainingCollectionName = "trainings"

// mongoTrainingRepository implements repository.TrainingRepository
type mongoTrainingRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingRepository creates a new Training repository backed by MongoDB.
func NewMongoTrainingRepository(db *mongo.Database) repository.TrainingRepository {
	return &mongoTrainingRepository{
		collection: db.Collection(trainingCollectionName),
	}
}

// Create inserts a new training. Nil slices are stored as empty arrays.
func (r *mongoTrainingRepository) Create(ctx context.Context, training *domain.Training) (primitive.ObjectID, error) {
	if training.Title == "" || training.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("training title and coach ID are required")
	}

	training.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	training.CreatedAt = now
	training.UpdatedAt = now
	if training.Exercises == nil {
		training.Exercises = []domain.Exercise{}
	}
	if training.MediaURLs == nil {
		training.MediaURLs = []string{}
	}

	result, err := r.collection.InsertOne(ctx, training)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a training by its ID.
func (r *mongoTrainingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Training, error) {
	var training domain.Training
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&training)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &training, nil
}

// ListByCoach returns the coach's trainings, newest first.
func (r *mongoTrainingRepository) ListByCoach(ctx context.Context, coachID primitive.ObjectID, templatesOnly bool) ([]domain.Training, error) {
	filter := bson.M{"coachId": coachID}
	if templatesOnly {
		filter["isTemplate"] = true
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trainings := []domain.Training{}
	if err = cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

// Update replaces the editable fields of a training. The owner and the
// media list are left alone; media only grows through AppendMediaURL.
func (r *mongoTrainingRepository) Update(ctx context.Context, training *domain.Training) error {
	if training.ID == primitive.NilObjectID {
		return errors.New("training ID is required for update")
	}

	exercises := training.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	filter := bson.M{"_id": training.ID, "coachId": training.CoachID}
	training.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":           training.Title,
			"description":     training.Description,
			"durationMinutes": training.DurationMinutes,
			"difficulty":      training.Difficulty,
			"category":        training.Category,
			"exercises":       exercises,
			"isTemplate":      training.IsTemplate,
			"updatedAt":       training.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendMediaURL adds url to the end of the training's media list.
func (r *mongoTrainingRepository) AppendMediaURL(ctx context.Context, id, coachID primitive.ObjectID, url string) error {
	filter := bson.M{"_id": id, "coachId": coachID}
	update := bson.M{
		"$push": bson.M{"mediaUrls": url},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// PullMediaURL drops url from the training's media list. A url that is not
// on the list is not an error.
func (r *mongoTrainingRepository) PullMediaURL(ctx context.Context, id, coachID primitive.ObjectID, url string) error {
	filter := bson.M{"_id": id, "coachId": coachID}
	update := bson.M{
		"$pull": bson.M{"mediaUrls": url},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a training, ensuring it belongs to the specified coach.
func (r *mongoTrainingRepository) Delete(ctx context.Context, id, coachID primitive.ObjectID) error {
	filter := bson.M{
		"_id":     id,
		"coachId": coachID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainingIndexes creates necessary indexes for the trainings collection.
func EnsureTrainingIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("training_text_search"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
