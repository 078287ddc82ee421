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

// ActivityRepository handles database operations for logged activities.
type ActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

// CreateActivity inserts a new activity entry.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert activity")
		return nil, fmt.Errorf("failed to insert activity: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		activity.ID = insertedID
	}
	return activity, nil
}

// GetAllActivities fetches every logged activity.
func (r *ActivityRepository) GetAllActivities(ctx context.Context) ([]models.Activity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %v", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %v", err)
	}
	return activities, nil
}

// GetUserActivities fetches a user's activities, newest first.
func (r *ActivityRepository) GetUserActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	filter := bson.M{"author_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %v", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %v", err)
	}
	return activities, nil
}
