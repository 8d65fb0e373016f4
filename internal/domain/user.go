package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleCoach Role = "coach"
	RoleStaff Role = "staff"
)

// User represents a club member with planner access (a coach or a staff
// member). Coaches can write to the planner; staff get read access.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClubID       primitive.ObjectID `bson:"clubId" json:"clubId"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}
