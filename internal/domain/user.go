package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
	RoleAdmin   Role = "admin"
	RoleNone    Role = "none"
)

// User is the slice of an account the training core needs: who it is,
// what it may do, and for athletes, which coach they train with.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// CoachID is set only for athletes. It points at the coach, the athlete
	// does not own it. Nil means the athlete is not assigned yet.
	CoachID *primitive.ObjectID `bson:"coachId,omitempty" json:"coachId,omitempty"`
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// CoachedBy reports whether u is an athlete assigned to coachID.
func (u *User) CoachedBy(coachID primitive.ObjectID) bool {
	return u.IsAthlete() && u.CoachID != nil && *u.CoachID == coachID
}
