package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogCategory classifies a progress-log entry.
type LogCategory string

const (
	LogProgress LogCategory = "progress"
	LogSetback  LogCategory = "setback"
	LogHealth   LogCategory = "health"
	LogGeneral  LogCategory = "general"
)

// ProgressLog is a dated coaching note attached to a client.
type ProgressLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	Note      string             `bson:"note" json:"note"`
	Category  LogCategory        `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
