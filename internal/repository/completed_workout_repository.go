package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CompletedWorkoutRepository handles database operations for workout
// completion records.
type CompletedWorkoutRepository struct {
	collection *mongo.Collection
}

func NewCompletedWorkoutRepository(db *mongo.Database) *CompletedWorkoutRepository {
	return &CompletedWorkoutRepository{
		collection: db.Collection("completed_workouts"),
	}
}

// CreateCompletedWorkout inserts a new completion record.
func (r *CompletedWorkoutRepository) CreateCompletedWorkout(ctx context.Context, record *models.CompletedWorkout) (*models.CompletedWorkout, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert completed workout")
		return nil, fmt.Errorf("failed to insert completed workout: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = insertedID
	}
	return record, nil
}

// GetAllCompletedWorkouts fetches every completion record.
func (r *CompletedWorkoutRepository) GetAllCompletedWorkouts(ctx context.Context) ([]models.CompletedWorkout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed workouts: %v", err)
	}
	defer cursor.Close(ctx)

	var records []models.CompletedWorkout
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode completed workouts: %v", err)
	}
	return records, nil
}

// GetUserCompletedWorkouts fetches the completion records of one user.
func (r *CompletedWorkoutRepository) GetUserCompletedWorkouts(ctx context.Context, userID primitive.ObjectID) ([]models.CompletedWorkout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"author_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed workouts: %v", err)
	}
	defer cursor.Close(ctx)

	var records []models.CompletedWorkout
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode completed workouts: %v", err)
	}
	return records, nil
}
