package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNames(id string) string {
	switch id {
	case "u1":
		return "Bryce"
	case "u2":
		return "Sam"
	}
	return ""
}

func TestBuildFeedWindow(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	activities := []Activity{
		{ID: "old", AuthorID: "u1", Type: TypeCardio, Value: 20, CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{ID: "recent", AuthorID: "u1", Type: TypeCardio, Value: 20, CreatedAt: now.Add(-6 * 24 * time.Hour)},
	}

	feed := BuildFeed(now, nil, activities, testNames)
	require.Len(t, feed, 1)
	assert.Equal(t, "cardio", feed[0].Type)
}

func TestBuildFeedSortOrder(t *testing.T) {
	now := laDate(2024, 1, 10, 12)
	day := func(ago int) time.Time { return now.Add(-time.Duration(ago) * 24 * time.Hour) }

	activities := []Activity{
		{ID: "a", AuthorID: "u1", Type: TypeCardio, Value: 20, CreatedAt: day(3)},
		{ID: "b", AuthorID: "u2", Type: TypeStretch, Value: 12, CreatedAt: day(1)},
		{ID: "c", AuthorID: "u1", Type: TypeColdPlunge, Value: 4, CreatedAt: day(5)},
	}

	feed := BuildFeed(now, nil, activities, testNames)
	require.Len(t, feed, 3)
	assert.Equal(t, day(1), feed[0].Date)
	assert.Equal(t, day(3), feed[1].Date)
	assert.Equal(t, day(5), feed[2].Date)
}

func TestBuildFeedWorkoutMessages(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	workouts := []CompletedWorkout{
		{AuthorID: "u1", WorkoutTitle: "Leg Day", Status: StatusCompleted, CreatedAt: now.Add(-2 * time.Hour)},
		{AuthorID: "u2", WorkoutTitle: "Push Day", Status: StatusSkipped, CreatedAt: now.Add(-3 * time.Hour)},
	}

	feed := BuildFeed(now, workouts, nil, testNames)
	require.Len(t, feed, 2)
	assert.Equal(t, "workout", feed[0].Type)
	assert.Equal(t, "Bryce completed Leg Day workout.", feed[0].Message)
	assert.Equal(t, "Sam skipped Push Day workout.", feed[1].Message)
}

func TestBuildFeedActivityMessages(t *testing.T) {
	now := laDate(2024, 1, 10, 12)
	ts := now.Add(-time.Hour)

	tests := []struct {
		act  Activity
		want string
	}{
		{Activity{AuthorID: "u1", Type: TypeMeal, Value: 3, CreatedAt: ts}, "Bryce logged 3 meals."},
		{Activity{AuthorID: "u1", Type: TypeCardio, Value: 25, CreatedAt: ts}, "Bryce did 25 minutes of cardio."},
		{Activity{AuthorID: "u1", Type: TypeStretch, Value: 10, CreatedAt: ts}, "Bryce stretched for 10 minutes."},
		{Activity{AuthorID: "u1", Type: TypeColdPlunge, Value: 5, CreatedAt: ts}, "Bryce cold plunged for 5 minutes."},
		{Activity{AuthorID: "u1", Type: TypeWeight, Value: 180.5, CreatedAt: ts}, "Bryce weighed in at 180.5 lbs."},
	}

	for _, tt := range tests {
		feed := BuildFeed(now, nil, []Activity{tt.act}, testNames)
		require.Len(t, feed, 1)
		assert.Equal(t, tt.want, feed[0].Message)
	}
}

func TestBuildFeedSkipsUnrecognizedTypes(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	activities := []Activity{
		{AuthorID: "u1", Type: TypeWater, Value: 2000, CreatedAt: now.Add(-time.Hour)},
		{AuthorID: "u1", Type: TypeUnknown, Value: 1, CreatedAt: now.Add(-time.Hour)},
	}

	assert.Empty(t, BuildFeed(now, nil, activities, testNames))
}

func TestBuildFeedMissingUserRendersEmptyName(t *testing.T) {
	now := laDate(2024, 1, 10, 12)

	workouts := []CompletedWorkout{
		{AuthorID: "ghost", WorkoutTitle: "Leg Day", Status: StatusCompleted, CreatedAt: now.Add(-time.Hour)},
	}

	feed := BuildFeed(now, workouts, nil, testNames)
	require.Len(t, feed, 1)
	assert.Equal(t, "completed Leg Day workout.", feed[0].Message)

	// A nil lookup degrades the same way.
	feed = BuildFeed(now, workouts, nil, nil)
	require.Len(t, feed, 1)
	assert.Equal(t, "completed Leg Day workout.", feed[0].Message)
}

func TestBuildFeedEmptyInput(t *testing.T) {
	now := laDate(2024, 1, 10, 12)
	assert.Empty(t, BuildFeed(now, nil, nil, testNames))
}
