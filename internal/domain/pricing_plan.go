package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingPlan is a catalog entry shown on the public pricing page. Price is
// the monthly rate in whole currency units (DZD).
type PricingPlan struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Price        int64              `bson:"price" json:"price"`
	DurationDays int                `bson:"durationDays" json:"durationDays"`
	Features     []string           `bson:"features" json:"features"`
	MostPopular  bool               `bson:"mostPopular" json:"mostPopular"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
