package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
)

func (e *testEnv) createScheduled(t *testing.T, userID string, notifyAt time.Time, sent bool) string {
	t.Helper()

	scheduledID, err := e.scheduledRepo.Create(context.Background(), &models.ScheduledActivity{
		ActivityID:       "act-1",
		UserID:           userID,
		Activity:         "tennis",
		Location:         "City Courts",
		Time:             "18:00",
		NotifyAt:         notifyAt,
		NotificationSent: sent,
	})
	if err != nil {
		t.Fatalf("create scheduled activity: %v", err)
	}
	return scheduledID
}

func TestDispatchDueSendsAndMarksSent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uid := env.createUser(t, "alice", true)
	if err := env.userRepo.UpdatePushToken(ctx, uid, "tok-alice"); err != nil {
		t.Fatalf("UpdatePushToken: %v", err)
	}
	env.createScheduled(t, uid, time.Now().Add(-time.Minute), false)

	dispatched, err := env.reminders.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if dispatched != 1 {
		t.Fatalf("dispatched = %d, want 1", dispatched)
	}
	if env.sender.count() != 1 {
		t.Errorf("pushes sent = %d, want 1", env.sender.count())
	}

	records, err := env.scheduled.ListUserScheduled(ctx, uid)
	if err != nil {
		t.Fatalf("ListUserScheduled: %v", err)
	}
	if !records[0].NotificationSent || records[0].NotificationID == "" {
		t.Errorf("record not marked sent: sent=%v id=%q", records[0].NotificationSent, records[0].NotificationID)
	}

	// Second pass finds nothing
	dispatched, err = env.reminders.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("second DispatchDue: %v", err)
	}
	if dispatched != 0 {
		t.Errorf("second pass dispatched %d, want 0", dispatched)
	}
}

func TestDispatchDueMarksSentWithoutToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uid := env.createUser(t, "bob", true)
	env.createScheduled(t, uid, time.Now().Add(-time.Minute), false)

	dispatched, err := env.reminders.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if dispatched != 1 {
		t.Errorf("dispatched = %d, want 1", dispatched)
	}
	if env.sender.count() != 0 {
		t.Errorf("pushes sent = %d, want 0", env.sender.count())
	}

	records, err := env.scheduled.ListUserScheduled(ctx, uid)
	if err != nil {
		t.Fatalf("ListUserScheduled: %v", err)
	}
	if !records[0].NotificationSent {
		t.Error("record without a token was left pending, would retry forever")
	}
}

func TestDispatchDueIgnoresFutureReminders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uid := env.createUser(t, "carol", true)
	env.createScheduled(t, uid, time.Now().Add(time.Hour), false)

	dispatched, err := env.reminders.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if dispatched != 0 {
		t.Errorf("dispatched = %d, want 0", dispatched)
	}
}
