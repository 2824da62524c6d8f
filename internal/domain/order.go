package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus for pending applications. Orders never transition to a terminal
// status in place: approval deletes the order and creates a Client, rejection
// deletes it outright.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
)

// ExperienceLevel of the applicant.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// PrimaryGoal of the applicant.
type PrimaryGoal string

const (
	GoalFatLoss    PrimaryGoal = "fat_loss"
	GoalMuscleGain PrimaryGoal = "muscle_gain"
	GoalStrength   PrimaryGoal = "strength"
	GoalOther      PrimaryGoal = "other"
)

// Order is a transient application record created by the public subscription
// form, staged until the admin approves or rejects it.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Email           string             `bson:"email" json:"email"`
	PhoneNumber     string             `bson:"phoneNumber" json:"phoneNumber"`
	Age             int                `bson:"age" json:"age"`
	HeightCm        float64            `bson:"height" json:"height"`
	WeightKg        float64            `bson:"weight" json:"weight"`
	ExperienceLevel ExperienceLevel    `bson:"experienceLevel" json:"experienceLevel"`
	PrimaryGoal     PrimaryGoal        `bson:"primaryGoal" json:"primaryGoal"`
	OtherGoal       string             `bson:"otherGoal,omitempty" json:"otherGoal,omitempty"`
	InjuriesOrNotes string             `bson:"injuriesOrNotes,omitempty" json:"injuriesOrNotes,omitempty"`

	PreferredPlan        string      `bson:"preferredPlan" json:"preferredPlan"`
	SubscriptionDuration int         `bson:"subscriptionDuration" json:"subscriptionDuration"` // months
	PromoCode            string      `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	FinalPrice           int64       `bson:"finalPrice" json:"finalPrice"`
	Status               OrderStatus `bson:"status" json:"status"`
	CreatedAt            time.Time   `bson:"createdAt" json:"createdAt"`
}
