package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakNoRecords(t *testing.T) {
	now := laDate(2024, 1, 10, 12)
	assert.Equal(t, 0, Streak(now, nil, nil))
}

func TestStreakConsecutiveDays(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	// Qualifying cardio on each of the five days before today.
	var activities []Activity
	for i := 1; i <= 5; i++ {
		activities = append(activities, Activity{
			ID:        "a",
			AuthorID:  "u1",
			Type:      TypeCardio,
			Value:     20,
			CreatedAt: laDate(2024, 1, 10-i, 9),
		})
	}

	assert.Equal(t, 5, Streak(now, nil, activities))

	// Today qualifying extends the streak to 6.
	withToday := append(activities, Activity{
		AuthorID: "u1", Type: TypeCardio, Value: 20, CreatedAt: laDate(2024, 1, 10, 8),
	})
	assert.Equal(t, 6, Streak(now, nil, withToday))
}

func TestStreakGapBreaksChain(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	activities := []Activity{
		{AuthorID: "u1", Type: TypeStretch, Value: 12, CreatedAt: laDate(2024, 1, 9, 9)},
		{AuthorID: "u1", Type: TypeStretch, Value: 12, CreatedAt: laDate(2024, 1, 8, 9)},
		// Jan 7 missing.
		{AuthorID: "u1", Type: TypeStretch, Value: 12, CreatedAt: laDate(2024, 1, 6, 9)},
	}

	assert.Equal(t, 2, Streak(now, nil, activities))
}

func TestStreakTodayOnly(t *testing.T) {
	now := laDate(2024, 1, 10, 22)

	workouts := []CompletedWorkout{
		{AuthorID: "u1", Status: StatusCompleted, CreatedAt: laDate(2024, 1, 10, 7)},
	}
	assert.Equal(t, 1, Streak(now, workouts, nil))
}

func TestStreakSkippedWorkoutDoesNotQualify(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	workouts := []CompletedWorkout{
		{AuthorID: "u1", Status: StatusSkipped, CreatedAt: laDate(2024, 1, 9, 7)},
	}
	assert.Equal(t, 0, Streak(now, workouts, nil))
}

func TestStreakMealsAggregateBeforeThreshold(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	// Three single-meal entries yesterday only qualify because Streak
	// normalizes before applying the 3-meal threshold.
	activities := []Activity{
		{ID: "m1", AuthorID: "u1", Type: TypeMeal, Value: 1, CreatedAt: laDate(2024, 1, 9, 8)},
		{ID: "m2", AuthorID: "u1", Type: TypeMeal, Value: 1, CreatedAt: laDate(2024, 1, 9, 13)},
		{ID: "m3", AuthorID: "u1", Type: TypeMeal, Value: 1, CreatedAt: laDate(2024, 1, 9, 19)},
	}
	assert.Equal(t, 1, Streak(now, nil, activities))

	// Two meals fall short.
	assert.Equal(t, 0, Streak(now, nil, activities[:2]))
}

func TestStreakBelowThresholdActivityDoesNotQualify(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	activities := []Activity{
		{AuthorID: "u1", Type: TypeCardio, Value: 14, CreatedAt: laDate(2024, 1, 9, 9)},
		{AuthorID: "u1", Type: TypeWeight, Value: 180, CreatedAt: laDate(2024, 1, 9, 9)},
	}
	assert.Equal(t, 0, Streak(now, nil, activities))
}
