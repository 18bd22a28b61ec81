package entity

import (
	"fmt"
	"math/rand"
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	Role         UserRole  `bson:"role" json:"role"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// GenerateUsername derives a default username from the first letters of the
// user's name plus a random four-digit suffix.
func GenerateUsername(name string) string {
	initials := name
	if len(initials) > 3 {
		initials = initials[:3]
	}
	return fmt.Sprintf("%s-%d", initials, rand.Intn(9000)+1000)
}

// Summary returns the author fields embedded in comment and blog views.
func (u *User) Summary() AuthorSummary {
	return AuthorSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}
