package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role of an authenticated back-office user. There is a single role today;
// the type exists so the JWT claims and middleware stay explicit about it.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Admin is a back-office user. The public site never authenticates; only the
// admin screens do.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
