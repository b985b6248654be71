package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompletionStatus describes how much of an assigned session was done.
type CompletionStatus string

const (
	StatusCompleted CompletionStatus = "completed"
	StatusPartial   CompletionStatus = "partial"
	StatusSkipped   CompletionStatus = "skipped"
)

func (s CompletionStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPartial, StatusSkipped:
		return true
	}
	return false
}

const (
	MinFeeling = 1
	MaxFeeling = 5
)

// DiaryEntry is an athlete's report against a ScheduledTraining.
// Entries are append-only.
type DiaryEntry struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID           primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	ScheduledTrainingID primitive.ObjectID `bson:"scheduledTrainingId" json:"scheduledTrainingId"`
	TrainingID          primitive.ObjectID `bson:"trainingId" json:"trainingId"`
	Feeling             int                `bson:"feeling" json:"feeling"`
	SleepHours          *float64           `bson:"sleepHours,omitempty" json:"sleepHours,omitempty"`
	Notes               string             `bson:"notes" json:"notes"`
	CompletionStatus    CompletionStatus   `bson:"completionStatus,omitempty" json:"completionStatus"`
	// Completed is the legacy flag older entries carry instead of
	// CompletionStatus. New entries write both.
	Completed *bool     `bson:"completed,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DeriveStatus resolves the completion status of a stored entry. A present
// status wins; otherwise the legacy flag maps true to completed and
// false or missing to skipped. Legacy data never yields partial.
func DeriveStatus(status CompletionStatus, legacyCompleted *bool) CompletionStatus {
	if status != "" {
		return status
	}
	if legacyCompleted != nil && *legacyCompleted {
		return StatusCompleted
	}
	return StatusSkipped
}

// Status is DeriveStatus applied to e.
func (e *DiaryEntry) Status() CompletionStatus {
	return DeriveStatus(e.CompletionStatus, e.Completed)
}

// Normalize fills CompletionStatus from the legacy flag. Repositories call
// it on every entry they read.
func (e *DiaryEntry) Normalize() {
	e.CompletionStatus = e.Status()
}
