package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role controls access to catalog curation endpoints.
type Role string

const (
	// RoleMember is the default role for self-registered accounts.
	RoleMember Role = "member"
	// RoleAdmin can ingest exercises and manage media. Admin accounts are
	// provisioned out of band, never through registration.
	RoleAdmin Role = "admin"
)

// User is an account record. Everything about training lives in Profile,
// keyed by the user's id; User only carries identity and credentials.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the account may curate the exercise catalog.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
