package services

import (
	"context"
	"time"

	"github.com/brycegym/gymapp-backend/internal/models"
	"github.com/brycegym/gymapp-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateNotification logs a new notification for a user
func (s *NotificationService) CreateNotification(ctx context.Context, userID primitive.ObjectID, notifType, title, message string, targetID *primitive.ObjectID) error {
	notif := &models.Notification{
		UserID:   userID,
		Type:     notifType,
		Title:    title,
		Message:  message,
		Read:     false,
		TargetID: targetID,
	}
	return s.repo.CreateNotification(ctx, notif)
}

// GetUserNotifications returns all notifications for a user
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.repo.GetUserNotifications(ctx, userID)
}

// MarkNotificationAsRead sets the "read" status of a notification to true
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, notifID primitive.ObjectID) error {
	return s.repo.MarkAsRead(ctx, notifID)
}

// DeleteNotification deletes a specific notification
func (s *NotificationService) DeleteNotification(ctx context.Context, notifID primitive.ObjectID) error {
	return s.repo.DeleteNotification(ctx, notifID)
}

// HasRecentNotification reports whether the user already received a
// notification of the given type within the window. Used by the streak
// reminder job to avoid nagging twice in one day.
func (s *NotificationService) HasRecentNotification(ctx context.Context, userID primitive.ObjectID, notifType string, window time.Duration) bool {
	existing, err := s.repo.GetLatestNotificationByType(ctx, userID, notifType)
	if err != nil || existing == nil {
		return false
	}
	return time.Since(existing.CreatedAt) < window
}

// DeleteExpiredNotifications is called periodically by cron to drop old ones
func (s *NotificationService) DeleteExpiredNotifications(ctx context.Context) error {
	return s.repo.DeleteExpiredNotifications(ctx)
}
