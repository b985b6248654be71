package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI
// and verifies it with a ping against the primary.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		return nil, multierr.Append(err, client.Disconnect(disconnectCtx))
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection the service uses.
// All collections are attempted; failures are combined.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return multierr.Combine(
		EnsureUserIndexes(ctx, db.Collection(userCollectionName)),
		EnsureTrainingIndexes(ctx, db.Collection(trainingCollectionName)),
		EnsureScheduledTrainingIndexes(ctx, db.Collection(scheduledTrainingCollectionName)),
		EnsureDiaryEntryIndexes(ctx, db.Collection(diaryEntryCollectionName)),
	)
}
