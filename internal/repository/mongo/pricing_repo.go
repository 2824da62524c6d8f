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

const pricingCollectionName = "pricing"

// mongoPricingPlanRepository implements the repository.PricingPlanRepository interface using MongoDB.
type mongoPricingPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPricingPlanRepository creates a new instance of mongoPricingPlanRepository.
func NewMongoPricingPlanRepository(db *mongo.Database) repository.PricingPlanRepository {
	return &mongoPricingPlanRepository{
		collection: db.Collection(pricingCollectionName),
	}
}

// Create inserts a new pricing plan.
func (r *mongoPricingPlanRepository) Create(ctx context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error) {
	if plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan name is required")
	}
	if plan.Features == nil {
		plan.Features = []string{}
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByName retrieves a plan by its display name. Names act as the join key
// between orders and the catalog.
func (r *mongoPricingPlanRepository) GetByName(ctx context.Context, name string) (*domain.PricingPlan, error) {
	var plan domain.PricingPlan
	filter := bson.M{"name": name}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// List retrieves the catalog ordered by duration, shortest first.
func (r *mongoPricingPlanRepository) List(ctx context.Context) ([]domain.PricingPlan, error) {
	var plans []domain.PricingPlan

	findOptions := options.Find().SetSort(bson.D{{Key: "durationDays", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update modifies an existing pricing plan.
func (r *mongoPricingPlanRepository) Update(ctx context.Context, plan *domain.PricingPlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("plan ID is required for update")
	}
	if plan.Name == "" {
		return errors.New("plan name cannot be empty")
	}

	filter := bson.M{"_id": plan.ID}
	update := bson.M{
		"$set": bson.M{
			"name":         plan.Name,
			"price":        plan.Price,
			"durationDays": plan.DurationDays,
			"features":     plan.Features,
			"mostPopular":  plan.MostPopular,
			"updatedAt":    time.Now().UTC(),
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

// Delete removes a pricing plan from the catalog.
func (r *mongoPricingPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePricingIndexes creates necessary indexes for the pricing collection.
func EnsurePricingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "durationDays", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
