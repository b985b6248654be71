package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Category string

const (
	CategoryEndurance Category = "endurance"
	CategoryTechnique Category = "technique"
	CategorySprint    Category = "sprint"
	CategoryStrength  Category = "strength"
	CategoryRecovery  Category = "recovery"
	CategoryMixed     Category = "mixed"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEndurance, CategoryTechnique, CategorySprint,
		CategoryStrength, CategoryRecovery, CategoryMixed:
		return true
	}
	return false
}

// Exercise is one step of a Training. Reps and Distance are free text
// ("8-10", "400m") because coaches write them that way.
type Exercise struct {
	Name      string `bson:"name" json:"name"`
	Sets      int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps      string `bson:"reps,omitempty" json:"reps,omitempty"`
	Distance  string `bson:"distance,omitempty" json:"distance,omitempty"`
	Intensity string `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Rest      string `bson:"rest,omitempty" json:"rest,omitempty"`
}

// Training is a session definition owned by a coach. Exercises and
// MediaURLs keep the order the coach gave them.
type Training struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID         primitive.ObjectID `bson:"coachId" json:"coachId"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Difficulty      Difficulty         `bson:"difficulty" json:"difficulty"`
	Category        Category           `bson:"category" json:"category"`
	Exercises       []Exercise         `bson:"exercises" json:"exercises"`
	MediaURLs       []string           `bson:"mediaUrls" json:"mediaUrls"`
	IsTemplate      bool               `bson:"isTemplate" json:"isTemplate"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *Training) OwnedBy(coachID primitive.ObjectID) bool {
	return t.CoachID == coachID
}
