package scoring

import (
	"strings"
	"time"
)

// ActivityType is the bounded set of activity kinds the scoring engine
// understands. Raw records carry open-ended strings; ParseActivityType maps
// them into this enum at the ingestion boundary.
type ActivityType string

const (
	TypeMeal       ActivityType = "meal"
	TypeCardio     ActivityType = "cardio"
	TypeStretch    ActivityType = "stretch"
	TypeColdPlunge ActivityType = "cold plunge"
	TypeWeight     ActivityType = "weight"
	TypeWater      ActivityType = "water"
	TypeUnknown    ActivityType = "unknown"
)

// ParseActivityType normalizes a raw type string into an ActivityType.
// Unrecognized strings map to TypeUnknown, which earns no points and is
// skipped by the feed.
func ParseActivityType(raw string) ActivityType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "meal", "meals":
		return TypeMeal
	case "cardio":
		return TypeCardio
	case "stretch", "stretching":
		return TypeStretch
	case "cold plunge":
		return TypeColdPlunge
	case "weight":
		return TypeWeight
	case "water":
		return TypeWater
	default:
		return TypeUnknown
	}
}

// WorkoutStatus is the outcome recorded when a user finishes (or bails on)
// a workout.
type WorkoutStatus string

const (
	StatusCompleted WorkoutStatus = "completed"
	StatusSkipped   WorkoutStatus = "skipped"
)

// Activity is a single logged event. Value semantics depend on Type:
// count for meals, minutes for cardio/stretch/cold plunge, pounds for
// weight, milliliters for water.
type Activity struct {
	ID        string
	AuthorID  string
	Type      ActivityType
	Value     float64
	CreatedAt time.Time
}

// CompletedWorkout links a user to a workout with an outcome. WorkoutTitle
// is denormalized onto the record so the feed can render it without a join.
type CompletedWorkout struct {
	AuthorID     string
	WorkoutID    string
	WorkoutTitle string
	Status       WorkoutStatus
	CreatedAt    time.Time
}
