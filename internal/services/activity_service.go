package services

import (
	"context"
	"fmt"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/scoring"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityStore is the persistence needed by the activity service,
// satisfied by repository.ActivityRepository.
type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	GetUserActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error)
}

type ActivityService struct {
	repo ActivityStore
}

func NewActivityService(repo ActivityStore) *ActivityService {
	return &ActivityService{repo: repo}
}

// LogActivity records a new activity for a user. The raw type string is
// parsed into the bounded activity-type set here, at the ingestion
// boundary, so downstream aggregation never sees free-form types.
func (s *ActivityService) LogActivity(ctx context.Context, authorID primitive.ObjectID, rawType string, value float64) (*models.Activity, error) {
	activityType := scoring.ParseActivityType(rawType)
	if activityType == scoring.TypeUnknown {
		logrus.WithField("type", rawType).Warn("Rejected unsupported activity type")
		return nil, fmt.Errorf("unsupported activity type: %q", rawType)
	}
	if value <= 0 {
		return nil, fmt.Errorf("activity value must be positive")
	}

	activity := &models.Activity{
		AuthorID: authorID,
		Type:     string(activityType),
		Value:    value,
	}

	created, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		logrus.WithError(err).Error("Failed to log activity in service")
		return nil, fmt.Errorf("failed to log activity: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": authorID.Hex(),
		"type":    activityType,
		"value":   value,
	}).Info("Activity logged successfully")

	return created, nil
}

// GetUserActivities returns a user's logged activities, newest first.
func (s *ActivityService) GetUserActivities(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	return s.repo.GetUserActivities(ctx, userID)
}
