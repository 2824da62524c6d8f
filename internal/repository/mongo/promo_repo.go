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

const promoCollectionName = "promoCodes"

// mongoPromoCodeRepository implements the repository.PromoCodeRepository interface using MongoDB.
type mongoPromoCodeRepository struct {
	collection *mongo.Collection
}

// NewMongoPromoCodeRepository creates a new instance of mongoPromoCodeRepository.
func NewMongoPromoCodeRepository(db *mongo.Database) repository.PromoCodeRepository {
	return &mongoPromoCodeRepository{
		collection: db.Collection(promoCollectionName),
	}
}

// Create inserts a new promo code. The code must already be upper-cased.
func (r *mongoPromoCodeRepository) Create(ctx context.Context, promo *domain.PromoCode) (primitive.ObjectID, error) {
	if promo.Code == "" {
		return primitive.NilObjectID, errors.New("promo code is required")
	}
	if promo.DiscountPercentage < 1 || promo.DiscountPercentage > 100 {
		return primitive.NilObjectID, errors.New("discount percentage must be between 1 and 100")
	}

	promo.ID = primitive.NewObjectID()
	promo.Status = domain.PromoActive
	promo.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, promo)
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

// GetByCode retrieves a promo code by its upper-cased code.
func (r *mongoPromoCodeRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	filter := bson.M{"code": code}

	err := r.collection.FindOne(ctx, filter).Decode(&promo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &promo, nil
}

// List retrieves all promo codes, newest first.
func (r *mongoPromoCodeRepository) List(ctx context.Context) ([]domain.PromoCode, error) {
	var promos []domain.PromoCode

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &promos); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return promos, nil
}

// MarkUsed flips an active code to used, stamping the consuming order and
// time. The status filter makes this a compare-and-set: if another approval
// consumed the code first, MatchedCount is zero and ErrConflict is returned,
// which aborts the surrounding transaction.
func (r *mongoPromoCodeRepository) MarkUsed(ctx context.Context, code string, orderID primitive.ObjectID) error {
	filter := bson.M{"code": code, "status": domain.PromoActive}
	update := bson.M{
		"$set": bson.M{
			"status":        domain.PromoUsed,
			"usedByOrderId": orderID,
			"usedAt":        time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the code does not exist or it is no longer active.
		return repository.ErrConflict
	}
	return nil
}

// Delete removes a promo code.
func (r *mongoPromoCodeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePromoIndexes creates necessary indexes for the promoCodes collection.
func EnsurePromoIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
