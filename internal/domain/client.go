package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientStatus tracks the subscription window state of a roster member.
type ClientStatus string

const (
	ClientActive ClientStatus = "active"
	ClientPaused ClientStatus = "paused"
)

// Client is an approved, paying roster member. Clients are created only by
// approving an order; the membership code is assigned at creation time and
// never changes afterwards.
type Client struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Email           string             `bson:"email" json:"email"`
	PhoneNumber     string             `bson:"phoneNumber" json:"phoneNumber"`
	Plan            string             `bson:"plan" json:"plan"`
	StartDate       time.Time          `bson:"startDate" json:"startDate"`
	EndDate         time.Time          `bson:"endDate" json:"endDate"`
	Status          ClientStatus       `bson:"status" json:"status"`
	DaysLeftOnPause *int               `bson:"daysLeftOnPause,omitempty" json:"daysLeftOnPause,omitempty"`
	MembershipCode  string             `bson:"membershipCode" json:"membershipCode"`

	PrimaryGoal string `bson:"primaryGoal,omitempty" json:"primaryGoal,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`

	// Coaching goal, managed from the admin client detail screen.
	CurrentGoalTitle string     `bson:"currentGoalTitle,omitempty" json:"currentGoalTitle,omitempty"`
	TargetMetric     string     `bson:"targetMetric,omitempty" json:"targetMetric,omitempty"`
	TargetValue      string     `bson:"targetValue,omitempty" json:"targetValue,omitempty"`
	TargetDate       *time.Time `bson:"targetDate,omitempty" json:"targetDate,omitempty"`

	// Resource links shared with the client.
	NutritionPlanURL   string `bson:"nutritionPlanUrl,omitempty" json:"nutritionPlanUrl,omitempty"`
	TrainingProgramURL string `bson:"trainingProgramUrl,omitempty" json:"trainingProgramUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (c *Client) IsPaused() bool {
	return c.Status == ClientPaused
}

// MembershipCodeFromID derives the public lookup token for a client from its
// document identifier: the first 8 hex characters, upper-cased. Uniqueness is
// inherited from the ObjectID.
func MembershipCodeFromID(id primitive.ObjectID) string {
	hex := id.Hex()
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return strings.ToUpper(hex)
}

// DaysUntil returns the number of whole days from now until t, never negative.
func DaysUntil(t, now time.Time) int {
	days := int(t.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
