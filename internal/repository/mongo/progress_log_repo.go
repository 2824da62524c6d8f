package mongo

import (
	"context"
	"errors"
	"time"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressLogCollectionName = "progressLogs"

// mongoProgressLogRepository implements the repository.ProgressLogRepository interface using MongoDB.
type mongoProgressLogRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressLogRepository creates a new instance of mongoProgressLogRepository.
func NewMongoProgressLogRepository(db *mongo.Database) repository.ProgressLogRepository {
	return &mongoProgressLogRepository{
		collection: db.Collection(progressLogCollectionName),
	}
}

// Create appends a progress-log entry for a client.
func (r *mongoProgressLogRepository) Create(ctx context.Context, entry *domain.ProgressLog) (primitive.ObjectID, error) {
	if entry.ClientID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("progress log client ID is required")
	}
	if entry.Note == "" {
		return primitive.NilObjectID, errors.New("progress log note is required")
	}

	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListByClientID retrieves a client's log, newest first.
func (r *mongoProgressLogRepository) ListByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressLog, error) {
	var entries []domain.ProgressLog
	filter := bson.M{"clientId": clientID}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureProgressLogIndexes creates necessary indexes for the progressLogs collection.
func EnsureProgressLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
