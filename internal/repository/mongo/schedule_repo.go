package mongo

import (
	"context"
	"errors"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The weekly schedule lives as a single document in the app-data collection.
const (
	appDataCollectionName = "app-data"
	scheduleDocumentID    = "weeklySchedule"
)

// scheduleDocument wraps the grid with its fixed string _id.
type scheduleDocument struct {
	ID       string                       `bson:"_id"`
	Schedule map[string]map[string]string `bson:"schedule"`
}

// mongoScheduleRepository implements the repository.ScheduleRepository interface using MongoDB.
type mongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new instance of mongoScheduleRepository.
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	return &mongoScheduleRepository{
		collection: db.Collection(appDataCollectionName),
	}
}

// Get loads the singleton grid.
func (r *mongoScheduleRepository) Get(ctx context.Context) (*domain.WeeklySchedule, error) {
	var doc scheduleDocument
	filter := bson.M{"_id": scheduleDocumentID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &domain.WeeklySchedule{Schedule: doc.Schedule}, nil
}

// Save replaces the whole document. Concurrent saves last-write-win; the
// grid carries no per-cell concurrency control.
func (r *mongoScheduleRepository) Save(ctx context.Context, schedule *domain.WeeklySchedule) error {
	if schedule == nil || schedule.Schedule == nil {
		return errors.New("schedule grid is required")
	}

	doc := scheduleDocument{
		ID:       scheduleDocumentID,
		Schedule: schedule.Schedule,
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": scheduleDocumentID}, doc, opts)
	return err
}
