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

const galleryCollectionName = "gallery"

// mongoGalleryRepository implements the repository.GalleryRepository interface using MongoDB.
type mongoGalleryRepository struct {
	collection *mongo.Collection
}

// NewMongoGalleryRepository creates a new instance of mongoGalleryRepository.
func NewMongoGalleryRepository(db *mongo.Database) repository.GalleryRepository {
	return &mongoGalleryRepository{
		collection: db.Collection(galleryCollectionName),
	}
}

// Create inserts a new gallery item.
func (r *mongoGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) (primitive.ObjectID, error) {
	if item.ImageURL == "" {
		return primitive.NilObjectID, errors.New("gallery image URL is required")
	}

	item.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// List retrieves gallery items ordered by position.
func (r *mongoGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	var items []domain.GalleryItem

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update modifies an existing gallery item.
func (r *mongoGalleryRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	if item.ID == primitive.NilObjectID {
		return errors.New("gallery item ID is required for update")
	}

	filter := bson.M{"_id": item.ID}
	update := bson.M{
		"$set": bson.M{
			"imageURL":  item.ImageURL,
			"caption":   item.Caption,
			"position":  item.Position,
			"updatedAt": time.Now().UTC(),
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

// Delete removes a gallery item.
func (r *mongoGalleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureGalleryIndexes creates necessary indexes for the gallery collection.
func EnsureGalleryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
