package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromoStatus of a discount token.
type PromoStatus string

const (
	PromoActive PromoStatus = "active"
	PromoUsed   PromoStatus = "used"
)

// PromoCode is a single-use percentage discount token. Codes are stored
// upper-cased and looked up case-insensitively by normalizing the input.
// The active->used transition happens exactly once, atomically with the
// order approval that consumes the code.
type PromoCode struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Code               string              `bson:"code" json:"code"`
	DiscountPercentage int                 `bson:"discountPercentage" json:"discountPercentage"`
	Status             PromoStatus         `bson:"status" json:"status"`
	UsedByOrderID      *primitive.ObjectID `bson:"usedByOrderId,omitempty" json:"usedByOrderId,omitempty"`
	UsedAt             *time.Time          `bson:"usedAt,omitempty" json:"usedAt,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}
