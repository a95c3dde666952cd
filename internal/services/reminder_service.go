package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/push"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
)

// ReminderService periodically scans for scheduled activities whose
// reminder instant has arrived and pushes the reminder to the attendee.
type ReminderService struct {
	scheduledRepo *repository.ScheduledRepository
	userRepo      *repository.UserRepository
	sender        push.Sender
	interval      time.Duration
}

func NewReminderService(scheduledRepo *repository.ScheduledRepository, userRepo *repository.UserRepository, sender push.Sender, interval time.Duration) *ReminderService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderService{
		scheduledRepo: scheduledRepo,
		userRepo:      userRepo,
		sender:        sender,
		interval:      interval,
	}
}

// Start runs the dispatch loop until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.DispatchDue(ctx); err != nil {
				log.Printf("⚠️ Reminder dispatch failed: %v", err)
			}
		}
	}
}

// DispatchDue sends reminders for every due scheduled activity and marks
// them sent. Push failures are logged but the record is still marked: the
// reminder is best-effort and must not loop forever on a dead token.
func (s *ReminderService) DispatchDue(ctx context.Context) (int, error) {
	due, err := s.scheduledRepo.ListDueReminders(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, sa := range due {
		notificationID := uuid.NewString()

		user, err := s.userRepo.GetByUID(ctx, sa.UserID)
		if err != nil {
			log.Printf("⚠️ Reminder skipped, user %s not found: %v", sa.UserID, err)
		} else if user.PushToken == "" {
			log.Printf("⚠️ Reminder skipped, user %s has no push token", sa.UserID)
		} else if s.sender != nil {
			body := fmt.Sprintf("%s at %s starts at %s", sa.Activity, sa.Location, sa.Time)
			if err := s.sender.Send(ctx, user.PushToken, "Upcoming activity", body, map[string]string{
				"type":        "activity_reminder",
				"activityId":  sa.ActivityID,
				"scheduledId": sa.ScheduledID,
			}); err != nil {
				log.Printf("⚠️ Failed to send reminder to %s: %v", sa.UserID, err)
			}
		}

		if err := s.scheduledRepo.MarkNotificationSent(ctx, sa.ScheduledID, notificationID); err != nil {
			log.Printf("⚠️ Failed to mark reminder sent for %s: %v", sa.ScheduledID, err)
			continue
		}
		dispatched++
	}

	return dispatched, nil
}
