// Package entity defines the domain entities for the account feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the store-generated unique identifier for the user.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Name is the user's display name.
	Name string `bson:"name" json:"name"`

	// Email is the user's email address used for authentication.
	// Uniqueness is enforced by a unique index on the users collection.
	Email string `bson:"email" json:"email"`

	// Username is the user's handle.
	Username string `bson:"username,omitempty" json:"username,omitempty"`

	// Password is the bcrypt hash of the user's password.
	// Google-signup accounts have no password. Never serialized to JSON.
	Password string `bson:"password,omitempty" json:"-"`

	// GoogleID is set for accounts created through google-signup.
	GoogleID string `bson:"googleId,omitempty" json:"googleId,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
