package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduledTraining assigns a Training to one athlete on one calendar day.
// Completed is a display cache maintained by diary submissions; the diary
// entries themselves are the source of truth.
type ScheduledTraining struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainingID    primitive.ObjectID `bson:"trainingId" json:"trainingId"`
	CoachID       primitive.ObjectID `bson:"coachId" json:"coachId"`
	AthleteID     primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	ScheduledDate time.Time          `bson:"scheduledDate" json:"scheduledDate"`
	Completed     bool               `bson:"completed" json:"completed"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// ScheduleState is where an assignment stands from the athlete's side.
type ScheduleState string

const (
	StateScheduledFuture ScheduleState = "scheduled"
	StatePending         ScheduleState = "pending"
	StateReported        ScheduleState = "reported"
)

// State derives the assignment state at now. Once an entry exists the
// assignment stays reported.
func (s *ScheduledTraining) State(now time.Time, hasEntry bool) ScheduleState {
	switch {
	case hasEntry:
		return StateReported
	case s.ScheduledDate.After(now):
		return StateScheduledFuture
	default:
		return StatePending
	}
}
