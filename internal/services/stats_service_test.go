package services

import (
	"context"
	"testing"
	"time"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserDirectory struct {
	users []models.User
}

func (f *fakeUserDirectory) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserDirectory) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, assert.AnError
}

type fakeEventStore struct {
	workouts   []models.CompletedWorkout
	activities []models.Activity
}

func (f *fakeEventStore) GetAllCompletedWorkouts(ctx context.Context) ([]models.CompletedWorkout, error) {
	return f.workouts, nil
}

func (f *fakeEventStore) GetAllActivities(ctx context.Context) ([]models.Activity, error) {
	return f.activities, nil
}

var laLoc = func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
	return loc
}()

func laDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, laLoc)
}

func newTestStats(users *fakeUserDirectory, events *fakeEventStore, now time.Time) *StatsService {
	s := NewStatsService(users, events)
	s.now = func() time.Time { return now }
	return s
}

func TestGetPoints(t *testing.T) {
	alice := models.User{ID: primitive.NewObjectID(), FirstName: "Alice"}
	day := laDate(2024, 1, 10, 8)

	events := &fakeEventStore{
		workouts: []models.CompletedWorkout{
			{AuthorID: alice.ID, WorkoutID: primitive.NewObjectID(), Status: models.WorkoutStatusCompleted, CreatedAt: day},
		},
		activities: []models.Activity{
			// Three separate meal entries merge to one 3-meal day.
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "meal", Value: 1, CreatedAt: day},
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "meal", Value: 1, CreatedAt: day.Add(time.Hour)},
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "meal", Value: 1, CreatedAt: day.Add(2 * time.Hour)},
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "cardio", Value: 20, CreatedAt: day.Add(3 * time.Hour)},
		},
	}

	stats := newTestStats(&fakeUserDirectory{users: []models.User{alice}}, events, laDate(2024, 1, 10, 20))

	ledger, err := stats.GetPoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, ledger["2024-01-10"][alice.ID.Hex()])
}

func TestGetUserWithStreak(t *testing.T) {
	alice := models.User{ID: primitive.NewObjectID(), FirstName: "Alice", Username: "alice"}
	now := laDate(2024, 1, 10, 12)

	events := &fakeEventStore{
		activities: []models.Activity{
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "cardio", Value: 20, CreatedAt: laDate(2024, 1, 9, 9)},
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "cardio", Value: 20, CreatedAt: laDate(2024, 1, 8, 9)},
		},
	}

	stats := newTestStats(&fakeUserDirectory{users: []models.User{alice}}, events, now)

	got, err := stats.GetUserWithStreak(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestGetAllUsersWithStreakIgnoresOtherUsersRecords(t *testing.T) {
	alice := models.User{ID: primitive.NewObjectID(), FirstName: "Alice"}
	bob := models.User{ID: primitive.NewObjectID(), FirstName: "Bob"}
	now := laDate(2024, 1, 10, 12)

	events := &fakeEventStore{
		activities: []models.Activity{
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "cardio", Value: 20, CreatedAt: laDate(2024, 1, 9, 9)},
		},
	}

	stats := newTestStats(&fakeUserDirectory{users: []models.User{alice, bob}}, events, now)

	got, err := stats.GetAllUsersWithStreak(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]int{}
	for _, u := range got {
		byName[u.FirstName] = u.Streak
	}
	assert.Equal(t, 1, byName["Alice"])
	assert.Equal(t, 0, byName["Bob"])
}

func TestGetActivityFeed(t *testing.T) {
	alice := models.User{ID: primitive.NewObjectID(), FirstName: "Alice"}
	ghost := primitive.NewObjectID() // no directory entry
	now := laDate(2024, 1, 10, 12)

	events := &fakeEventStore{
		workouts: []models.CompletedWorkout{
			{AuthorID: alice.ID, WorkoutTitle: "Leg Day", Status: models.WorkoutStatusCompleted, CreatedAt: now.Add(-2 * time.Hour)},
		},
		activities: []models.Activity{
			{ID: primitive.NewObjectID(), AuthorID: ghost, Type: "cardio", Value: 20, CreatedAt: now.Add(-time.Hour)},
			{ID: primitive.NewObjectID(), AuthorID: alice.ID, Type: "cardio", Value: 20, CreatedAt: now.Add(-9 * 24 * time.Hour)},
		},
	}

	stats := newTestStats(&fakeUserDirectory{users: []models.User{alice}}, events, now)

	feed, err := stats.GetActivityFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 2, "stale records fall outside the 7-day window")

	assert.Equal(t, "did 20 minutes of cardio.", feed[0].Message, "missing users render with an empty name")
	assert.Equal(t, "Alice completed Leg Day workout.", feed[1].Message)
}

func TestGetLeaderboard(t *testing.T) {
	alice := models.User{ID: primitive.NewObjectID(), FirstName: "Alice"}
	bob := models.User{ID: primitive.NewObjectID(), FirstName: "Bob"}
	now := laDate(2024, 1, 10, 20)

	events := &fakeEventStore{
		workouts: []models.CompletedWorkout{
			{AuthorID: bob.ID, Status: models.WorkoutStatusCompleted, CreatedAt: laDate(2024, 1, 9, 8)},
			{AuthorID: bob.ID, Status: models.WorkoutStatusCompleted, CreatedAt: laDate(2024, 1, 10, 8)},
			{AuthorID: alice.ID, Status: models.WorkoutStatusCompleted, CreatedAt: laDate(2024, 1, 10, 9)},
		},
	}

	stats := newTestStats(&fakeUserDirectory{users: []models.User{alice, bob}}, events, now)

	board, err := stats.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Bob", board[0].FirstName)
	assert.Equal(t, 2, board[0].TotalPoints)
	assert.Equal(t, "Alice", board[1].FirstName)
	assert.Equal(t, 1, board[1].TotalPoints)
}

func TestStatsEmptyStores(t *testing.T) {
	stats := newTestStats(&fakeUserDirectory{}, &fakeEventStore{}, laDate(2024, 1, 10, 12))

	ledger, err := stats.GetPoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)

	feed, err := stats.GetActivityFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)

	board, err := stats.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board)
}
