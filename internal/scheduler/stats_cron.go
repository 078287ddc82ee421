package cron

import (
	"context"

	"github.com/brycegym/gymapp-backend/internal/jobs"
	"github.com/brycegym/gymapp-backend/internal/scoring"
	"github.com/brycegym/gymapp-backend/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func StartStatsCronJobs(reminder *jobs.StreakReminder, notificationService *services.NotificationService) {
	// Schedules run in the club timezone, the same one day bucketing uses.
	c := cron.New(cron.WithLocation(scoring.Location()))

	// Streak reminders in the evening
	c.AddFunc("0 18 * * *", func() {
		err := reminder.RunDailyScan(context.Background())
		if err != nil {
			logrus.WithError(err).Error("StreakReminder scan failed")
		}
	})

	// Expired notification cleanup
	c.AddFunc("0 0 * * *", func() {
		err := notificationService.DeleteExpiredNotifications(context.Background())
		if err != nil {
			logrus.WithError(err).Error("DeleteExpiredNotifications failed")
		}
	})

	c.Start()
}
