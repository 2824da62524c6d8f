package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a landing-page image with a caption, ordered by Position.
type GalleryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL  string             `bson:"imageURL" json:"imageURL"`
	Caption   string             `bson:"caption" json:"caption"`
	Position  int                `bson:"position" json:"position"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Achievement is a client transformation showcased on the landing page.
// TransformationPeriod is in months; zero means unspecified.
type Achievement struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL             string             `bson:"imageURL" json:"imageURL"`
	Caption              string             `bson:"caption" json:"caption"`
	TransformationPeriod int                `bson:"transformationPeriod,omitempty" json:"transformationPeriod,omitempty"`
	Position             int                `bson:"position" json:"position"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
