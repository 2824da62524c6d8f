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

// Ledger collection names. Income and expenses are separate collections with
// the same row shape, merged at read time by the finance service.
const (
	IncomeCollectionName  = "transactions"
	ExpenseCollectionName = "expenses"
)

// mongoTransactionRepository implements repository.TransactionRepository over
// a single ledger collection.
type mongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a ledger repository over the named
// collection (IncomeCollectionName or ExpenseCollectionName).
func NewMongoTransactionRepository(db *mongo.Database, collectionName string) repository.TransactionRepository {
	return &mongoTransactionRepository{
		collection: db.Collection(collectionName),
	}
}

// Create appends a ledger row.
func (r *mongoTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) (primitive.ObjectID, error) {
	if txn.Description == "" {
		return primitive.NilObjectID, errors.New("transaction description is required")
	}
	if txn.Amount <= 0 {
		return primitive.NilObjectID, errors.New("transaction amount must be positive")
	}

	txn.ID = primitive.NewObjectID()
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, txn)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// List retrieves all rows, newest first.
func (r *mongoTransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	var txns []domain.Transaction

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return txns, nil
}

// Delete removes a ledger row.
func (r *mongoTransactionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureLedgerIndexes creates necessary indexes for a ledger collection.
func EnsureLedgerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
