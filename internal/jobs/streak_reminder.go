package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/brycegym/gymapp-backend/internal/scoring"
	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/brycegym/gymapp-backend/pkg/email"
	"github.com/sirupsen/logrus"
)

const streakAtRiskWindow = 20 * time.Hour

type StreakReminder struct {
	StatsService        *services.StatsService
	UserService         *services.UserService
	NotificationService *services.NotificationService
}

// NewStreakReminder creates a new instance of StreakReminder
func NewStreakReminder(statsService *services.StatsService, userService *services.UserService, notifService *services.NotificationService) *StreakReminder {
	return &StreakReminder{
		StatsService:        statsService,
		UserService:         userService,
		NotificationService: notifService,
	}
}

// RunDailyScan finds users whose streak is at risk, meaning they have an
// active streak but have not earned any points so far today, and sends
// each of them a reminder.
func (r *StreakReminder) RunDailyScan(ctx context.Context) error {
	users, err := r.UserService.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %v", err)
	}

	streaks, err := r.StatsService.StreaksByUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute streaks: %v", err)
	}

	ledger, err := r.StatsService.GetPoints(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute points: %v", err)
	}

	today := scoring.DayString(time.Now())
	reminded := 0

	for _, user := range users {
		streak := streaks[user.ID.Hex()]
		if streak == 0 {
			continue
		}
		if ledger[today][user.ID.Hex()] > 0 {
			continue
		}
		if r.NotificationService.HasRecentNotification(ctx, user.ID, "streak_at_risk", streakAtRiskWindow) {
			continue
		}

		message := fmt.Sprintf("Your %d day streak is at risk! Log a workout or activity today to keep it going.", streak)
		if err := r.NotificationService.CreateNotification(ctx, user.ID, "streak_at_risk", "Streak At Risk", message, nil); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID.Hex()).Error("Failed to create streak reminder")
			continue
		}

		if user.Email != "" {
			if err := email.SendEmail(user.Email, "Your streak is at risk", message); err != nil {
				logrus.WithError(err).WithField("user_id", user.ID.Hex()).Warn("Failed to send streak reminder email")
			}
		}
		reminded++
	}

	logrus.WithField("reminded", reminded).Info("Streak reminder scan completed")
	return nil
}
