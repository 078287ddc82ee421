package services

import (
	"context"
	"fmt"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/repository"
	"github.com/brycegym/gymapp-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// incompleteWorkoutLimit caps how many upcoming workouts the home screen shows.
const incompleteWorkoutLimit = 4

// WorkoutService encapsulates the business logic for workout routines and
// completion records.
type WorkoutService struct {
	repo                *repository.WorkoutRepository
	completedRepo       *repository.CompletedWorkoutRepository
	NotificationService *NotificationService
}

// NewWorkoutService creates a new instance of WorkoutService.
func NewWorkoutService(repo *repository.WorkoutRepository, completedRepo *repository.CompletedWorkoutRepository, notificationService *NotificationService) *WorkoutService {
	return &WorkoutService{
		repo:                repo,
		completedRepo:       completedRepo,
		NotificationService: notificationService,
	}
}

// CreateWorkout stores a new workout routine.
func (s *WorkoutService) CreateWorkout(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	if workout.Title == "" {
		logger.Log.Warn("Workout title is empty during creation")
		return nil, fmt.Errorf("workout title is required")
	}

	created, err := s.repo.CreateWorkout(ctx, workout)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create workout")
		return nil, fmt.Errorf("failed to create workout: %v", err)
	}

	logger.Log.WithField("workout_id", created.ID.Hex()).Info("Workout created in service layer")
	return created, nil
}

// GetWorkout retrieves a workout by its ID.
func (s *WorkoutService) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("workout_id", id).WithError(err).Warn("Invalid workout ID in GetWorkout")
		return nil, fmt.Errorf("invalid workout ID: %v", err)
	}

	workout, err := s.repo.GetWorkoutByID(ctx, objID)
	if err != nil {
		logger.Log.WithField("workout_id", id).WithError(err).Error("Failed to get workout from repository")
		return nil, fmt.Errorf("failed to get workout: %v", err)
	}

	return workout, nil
}

// GetAllWorkouts retrieves every workout routine.
func (s *WorkoutService) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	workouts, err := s.repo.GetAllWorkouts(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch all workouts")
		return nil, fmt.Errorf("failed to fetch workouts: %v", err)
	}
	return workouts, nil
}

// GetIncompleteWorkouts returns up to four workouts the user has no
// completion record for yet.
func (s *WorkoutService) GetIncompleteWorkouts(ctx context.Context, userID primitive.ObjectID) ([]models.Workout, error) {
	records, err := s.completedRepo.GetUserCompletedWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed workouts: %v", err)
	}

	doneIDs := make([]primitive.ObjectID, 0, len(records))
	for _, r := range records {
		doneIDs = append(doneIDs, r.WorkoutID)
	}

	workouts, err := s.repo.GetWorkoutsExcluding(ctx, doneIDs, incompleteWorkoutLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incomplete workouts: %v", err)
	}
	return workouts, nil
}

// CompleteWorkout records the outcome of a workout for a user. The workout
// title is copied onto the record so the activity feed can render it later
// without a join.
func (s *WorkoutService) CompleteWorkout(ctx context.Context, authorID primitive.ObjectID, workoutID string, status string) (*models.CompletedWorkout, error) {
	if status != models.WorkoutStatusCompleted && status != models.WorkoutStatusSkipped {
		return nil, fmt.Errorf("invalid workout status: %q", status)
	}

	objID, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil, fmt.Errorf("invalid workout ID: %v", err)
	}

	workout, err := s.repo.GetWorkoutByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("workout not found: %v", err)
	}

	record := &models.CompletedWorkout{
		AuthorID:     authorID,
		WorkoutID:    workout.ID,
		WorkoutTitle: workout.Title,
		Status:       status,
	}

	created, err := s.completedRepo.CreateCompletedWorkout(ctx, record)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to record workout completion")
		return nil, fmt.Errorf("failed to record workout completion: %v", err)
	}

	if status == models.WorkoutStatusSkipped {
		go func() {
			err := s.NotificationService.CreateNotification(
				context.Background(),
				authorID,
				"workout_skipped",
				"Workout Skipped",
				fmt.Sprintf("You skipped \"%s\". Tomorrow is a new day!", workout.Title),
				&workout.ID,
			)
			if err != nil {
				logrus.WithError(err).Warn("Failed to send workout skipped notification")
			}
		}()
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":    authorID.Hex(),
		"workout_id": workoutID,
		"status":     status,
	}).Info("Workout completion recorded")

	return created, nil
}
