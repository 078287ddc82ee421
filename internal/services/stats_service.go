package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/repository"
	"github.com/brycegym/gymapp-backend/internal/scoring"
	"github.com/brycegym/gymapp-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDirectory is the user lookup the stats queries depend on.
// *repository.UserRepository satisfies it; tests use in-memory fakes.
type UserDirectory interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// EventStore supplies the raw event records the aggregations are computed
// from. *repository.CompletedWorkoutRepository and *repository.
// ActivityRepository together back it in production (see eventStore).
type EventStore interface {
	GetAllCompletedWorkouts(ctx context.Context) ([]models.CompletedWorkout, error)
	GetAllActivities(ctx context.Context) ([]models.Activity, error)
}

// NewEventStore bundles the completion and activity repositories into the
// single EventStore the stats queries consume.
func NewEventStore(workouts *repository.CompletedWorkoutRepository, activities *repository.ActivityRepository) EventStore {
	return &eventStore{workouts: workouts, activities: activities}
}

type eventStore struct {
	workouts   *repository.CompletedWorkoutRepository
	activities *repository.ActivityRepository
}

func (s *eventStore) GetAllCompletedWorkouts(ctx context.Context) ([]models.CompletedWorkout, error) {
	return s.workouts.GetAllCompletedWorkouts(ctx)
}

func (s *eventStore) GetAllActivities(ctx context.Context) ([]models.Activity, error) {
	return s.activities.GetAllActivities(ctx)
}

// StatsService answers the read-only aggregation queries: the points
// ledger, per-user streaks, the activity feed and the leaderboard. Every
// call refetches raw records and recomputes from scratch; there is no
// cached state.
type StatsService struct {
	users  UserDirectory
	events EventStore
	now    func() time.Time
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(users UserDirectory, events EventStore) *StatsService {
	return &StatsService{
		users:  users,
		events: events,
		now:    time.Now,
	}
}

// UserWithStreak is a user profile annotated with their current streak.
type UserWithStreak struct {
	models.PublicUser
	Streak int `json:"streak"`
}

// LeaderboardEntry is one row of the all-time points leaderboard.
type LeaderboardEntry struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	TotalPoints int    `json:"total_points"`
}

// GetPoints builds the date -> user -> points ledger from all completed
// workouts and all normalized activities.
func (s *StatsService) GetPoints(ctx context.Context) (scoring.Ledger, error) {
	workouts, activities, err := s.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	ledger := scoring.ComputePoints(workouts, scoring.Normalize(activities))

	logger.Log.WithField("days", len(ledger)).Info("Points ledger computed")
	return ledger, nil
}

// GetUserWithStreak returns one user's profile with their current streak.
func (s *StatsService) GetUserWithStreak(ctx context.Context, userID primitive.ObjectID) (*UserWithStreak, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}

	workouts, activities, err := s.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	id := userID.Hex()
	streak := scoring.Streak(s.now(), filterWorkouts(workouts, id), filterActivities(activities, id))

	return &UserWithStreak{PublicUser: user.Public(), Streak: streak}, nil
}

// GetAllUsersWithStreak returns every user's profile with their streak,
// fetching the event records only once.
func (s *StatsService) GetAllUsersWithStreak(ctx context.Context) ([]UserWithStreak, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	streaks, err := s.StreaksByUser(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserWithStreak, 0, len(users))
	for _, u := range users {
		result = append(result, UserWithStreak{
			PublicUser: u.Public(),
			Streak:     streaks[u.ID.Hex()],
		})
	}
	return result, nil
}

// StreaksByUser computes the current streak of every user that has any
// event records. Users absent from the map have a streak of 0.
func (s *StatsService) StreaksByUser(ctx context.Context) (map[string]int, error) {
	workouts, activities, err := s.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	byUserWorkouts := make(map[string][]scoring.CompletedWorkout)
	for _, w := range workouts {
		byUserWorkouts[w.AuthorID] = append(byUserWorkouts[w.AuthorID], w)
	}
	byUserActivities := make(map[string][]scoring.Activity)
	for _, a := range activities {
		byUserActivities[a.AuthorID] = append(byUserActivities[a.AuthorID], a)
	}

	ids := make(map[string]bool)
	for id := range byUserWorkouts {
		ids[id] = true
	}
	for id := range byUserActivities {
		ids[id] = true
	}

	now := s.now()
	streaks := make(map[string]int, len(ids))
	for id := range ids {
		streaks[id] = scoring.Streak(now, byUserWorkouts[id], byUserActivities[id])
	}
	return streaks, nil
}

// GetActivityFeed renders the trailing week of group activity, newest
// first. Users missing from the directory render with an empty name.
func (s *StatsService) GetActivityFeed(ctx context.Context) ([]scoring.FeedEntry, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	workouts, activities, err := s.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.Hex()] = u.FirstName
	}

	feed := scoring.BuildFeed(s.now(), workouts, activities, func(id string) string {
		return names[id]
	})

	logger.Log.WithField("entries", len(feed)).Info("Activity feed built")
	return feed, nil
}

// GetLeaderboard totals every user's points across all days, descending.
func (s *StatsService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	ledger, err := s.GetPoints(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID:      u.ID.Hex(),
			FirstName:   u.FirstName,
			TotalPoints: ledger.TotalPoints(u.ID.Hex()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].FirstName < entries[j].FirstName
	})

	return entries, nil
}

// fetchEvents pulls all raw records and converts them into the scoring
// package's record types, parsing activity types into the bounded enum.
func (s *StatsService) fetchEvents(ctx context.Context) ([]scoring.CompletedWorkout, []scoring.Activity, error) {
	records, err := s.events.GetAllCompletedWorkouts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch completed workouts: %v", err)
	}
	rawActivities, err := s.events.GetAllActivities(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch activities: %v", err)
	}

	workouts := make([]scoring.CompletedWorkout, 0, len(records))
	for _, r := range records {
		workouts = append(workouts, scoring.CompletedWorkout{
			AuthorID:     r.AuthorID.Hex(),
			WorkoutID:    r.WorkoutID.Hex(),
			WorkoutTitle: r.WorkoutTitle,
			Status:       scoring.WorkoutStatus(r.Status),
			CreatedAt:    r.CreatedAt,
		})
	}

	activities := make([]scoring.Activity, 0, len(rawActivities))
	for _, a := range rawActivities {
		activities = append(activities, scoring.Activity{
			ID:        a.ID.Hex(),
			AuthorID:  a.AuthorID.Hex(),
			Type:      scoring.ParseActivityType(a.Type),
			Value:     a.Value,
			CreatedAt: a.CreatedAt,
		})
	}

	return workouts, activities, nil
}

func filterWorkouts(workouts []scoring.CompletedWorkout, authorID string) []scoring.CompletedWorkout {
	var out []scoring.CompletedWorkout
	for _, w := range workouts {
		if w.AuthorID == authorID {
			out = append(out, w)
		}
	}
	return out
}

func filterActivities(activities []scoring.Activity, authorID string) []scoring.Activity {
	var out []scoring.Activity
	for _, a := range activities {
		if a.AuthorID == authorID {
			out = append(out, a)
		}
	}
	return out
}
