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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkoutRepository handles database operations for workout routines.
type WorkoutRepository struct {
	collection *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{
		collection: db.Collection("workouts"),
	}
}

// CreateWorkout inserts a new workout routine.
func (r *WorkoutRepository) CreateWorkout(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	workout.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert workout")
		return nil, fmt.Errorf("failed to insert workout: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		workout.ID = insertedID
	}

	logrus.WithField("workoutID", workout.ID.Hex()).Info("Workout created")
	return workout, nil
}

// GetWorkoutByID retrieves a single workout.
func (r *WorkoutRepository) GetWorkoutByID(ctx context.Context, id primitive.ObjectID) (*models.Workout, error) {
	var workout models.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		return nil, fmt.Errorf("failed to find workout: %v", err)
	}
	return &workout, nil
}

// GetAllWorkouts fetches every workout routine.
func (r *WorkoutRepository) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workouts: %v", err)
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %v", err)
	}
	return workouts, nil
}

// GetWorkoutsExcluding fetches up to limit workouts whose IDs are not in
// the given set. Used to list workouts a user has not completed yet.
func (r *WorkoutRepository) GetWorkoutsExcluding(ctx context.Context, ids []primitive.ObjectID, limit int64) ([]models.Workout, error) {
	filter := bson.M{}
	if len(ids) > 0 {
		filter["_id"] = bson.M{"$nin": ids}
	}
	opts := options.Find().SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workouts: %v", err)
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %v", err)
	}
	return workouts, nil
}
