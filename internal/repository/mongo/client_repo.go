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

const clientCollectionName = "clients"

// mongoClientRepository implements the repository.ClientRepository interface using MongoDB.
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new instance of mongoClientRepository.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client. The caller generates the ObjectID beforehand
// because the membership code is derived from it.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == primitive.NilObjectID {
		return errors.New("client ID must be generated before insert")
	}
	if client.FullName == "" || client.MembershipCode == "" {
		return errors.New("client full name and membership code are required")
	}

	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID retrieves a client by its MongoDB ObjectID.
func (r *mongoClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	var client domain.Client
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByMembershipCode retrieves a client by its public lookup token.
// The code is expected to be upper-cased by the caller.
func (r *mongoClientRepository) GetByMembershipCode(ctx context.Context, code string) (*domain.Client, error) {
	var client domain.Client
	filter := bson.M{"membershipCode": code}

	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// List retrieves every client, newest first.
func (r *mongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update replaces the mutable fields of a client. The membership code and
// creation metadata are deliberately left out of the $set document.
func (r *mongoClientRepository) Update(ctx context.Context, client *domain.Client) error {
	if client.ID == primitive.NilObjectID {
		return errors.New("client ID is required for update")
	}

	filter := bson.M{"_id": client.ID}
	set := bson.M{
		"fullName":           client.FullName,
		"email":              client.Email,
		"phoneNumber":        client.PhoneNumber,
		"plan":               client.Plan,
		"startDate":          client.StartDate,
		"endDate":            client.EndDate,
		"status":             client.Status,
		"primaryGoal":        client.PrimaryGoal,
		"notes":              client.Notes,
		"currentGoalTitle":   client.CurrentGoalTitle,
		"targetMetric":       client.TargetMetric,
		"targetValue":        client.TargetValue,
		"targetDate":         client.TargetDate,
		"nutritionPlanUrl":   client.NutritionPlanURL,
		"trainingProgramUrl": client.TrainingProgramURL,
		"updatedAt":          time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if client.DaysLeftOnPause != nil {
		set["daysLeftOnPause"] = *client.DaysLeftOnPause
	} else {
		update["$unset"] = bson.M{"daysLeftOnPause": ""}
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

// Delete removes a client from the roster.
func (r *mongoClientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureClientIndexes creates necessary indexes for the clients collection.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "membershipCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
