package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a routine members can complete, e.g. "Leg Day".
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   []string           `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

const (
	WorkoutStatusCompleted = "completed"
	WorkoutStatusSkipped   = "skipped"
)

// CompletedWorkout records a member finishing or skipping a workout.
// WorkoutTitle is copied from the workout at completion time so feed
// rendering does not need a join.
type CompletedWorkout struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID     primitive.ObjectID `bson:"author_id" json:"author_id"`
	WorkoutID    primitive.ObjectID `bson:"workout_id" json:"workout_id"`
	WorkoutTitle string             `bson:"workout_title" json:"workout_title"`
	Status       string             `bson:"status" json:"status"` // "completed" or "skipped"
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
