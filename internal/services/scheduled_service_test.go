package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
)

func fanOutFixture(t *testing.T, date, startTime string) (*models.Activity, services.ScheduledMember, []*models.Participant) {
	t.Helper()

	activity := &models.Activity{
		ActivityID:      "act-1",
		CreatorUID:      "creator-uid",
		Activity:        "tennis",
		Level:           "intermediate",
		Location:        "City Courts",
		Date:            date,
		Time:            startTime,
		RequiredMembers: 2,
	}
	creator := services.ScheduledMember{UID: "creator-uid", Name: "alice"}
	participants := []*models.Participant{
		{UserID: "bob-uid", UserName: "bob"},
		{UserID: "carol-uid", UserName: "carol"},
	}
	return activity, creator, participants
}

func TestFanOutCreatesRecordForEveryMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	activity, creator, participants := fanOutFixture(t, start.Format("2006-01-02"), start.Format("15:04"))

	if err := env.scheduled.CreateForAllParticipants(ctx, activity, creator, participants); err != nil {
		t.Fatalf("CreateForAllParticipants: %v", err)
	}

	wantPartners := map[string]string{
		"creator-uid": "bob, carol",
		"bob-uid":     "carol, alice",
		"carol-uid":   "bob, alice",
	}
	for uid, partners := range wantPartners {
		records, err := env.scheduled.ListUserScheduled(ctx, uid)
		if err != nil {
			t.Fatalf("ListUserScheduled(%s): %v", uid, err)
		}
		if len(records) != 1 {
			t.Fatalf("user %s has %d records, want 1", uid, len(records))
		}
		rec := records[0]
		if rec.PartnerName != partners {
			t.Errorf("partnerName for %s = %q, want %q", uid, rec.PartnerName, partners)
		}
		if rec.PartnerUID == uid {
			t.Errorf("partnerUid for %s refers to self", uid)
		}
		if rec.Activity != "tennis" || rec.Location != "City Courts" {
			t.Errorf("record for %s lost activity fields: %+v", uid, rec)
		}
		if rec.NotificationSent {
			t.Errorf("reminder for %s marked sent before dispatch", uid)
		}
	}
}

func TestFanOutIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	activity, creator, participants := fanOutFixture(t, start.Format("2006-01-02"), start.Format("15:04"))

	for i := 0; i < 2; i++ {
		if err := env.scheduled.CreateForAllParticipants(ctx, activity, creator, participants); err != nil {
			t.Fatalf("CreateForAllParticipants run %d: %v", i+1, err)
		}
	}

	for _, uid := range []string{"creator-uid", "bob-uid", "carol-uid"} {
		records, err := env.scheduled.ListUserScheduled(ctx, uid)
		if err != nil {
			t.Fatalf("ListUserScheduled(%s): %v", uid, err)
		}
		if len(records) != 1 {
			t.Errorf("user %s has %d records after rerun, want 1", uid, len(records))
		}
	}
}

func TestFanOutDeduplicatesCreatorInRoster(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	activity, creator, participants := fanOutFixture(t, start.Format("2006-01-02"), start.Format("15:04"))
	participants = append(participants, &models.Participant{UserID: creator.UID, UserName: creator.Name})

	if err := env.scheduled.CreateForAllParticipants(ctx, activity, creator, participants); err != nil {
		t.Fatalf("CreateForAllParticipants: %v", err)
	}

	records, err := env.scheduled.ListUserScheduled(ctx, creator.UID)
	if err != nil {
		t.Fatalf("ListUserScheduled(creator): %v", err)
	}
	if len(records) != 1 {
		t.Errorf("creator has %d records, want 1", len(records))
	}
}

func TestFanOutPastActivitySkipsReminder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Now().Add(-2 * time.Hour)
	activity, creator, participants := fanOutFixture(t, start.Format("2006-01-02"), start.Format("15:04"))

	if err := env.scheduled.CreateForAllParticipants(ctx, activity, creator, participants); err != nil {
		t.Fatalf("CreateForAllParticipants: %v", err)
	}

	records, err := env.scheduled.ListUserScheduled(ctx, "bob-uid")
	if err != nil {
		t.Fatalf("ListUserScheduled: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if !records[0].NotificationSent {
		t.Error("reminder for a past activity was left pending")
	}

	// Nothing due either: records marked sent never reach the dispatcher
	dispatched, err := env.reminders.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if dispatched != 0 {
		t.Errorf("dispatched %d reminders, want 0", dispatched)
	}
}

func TestFanOutUnparseableDateSkipsReminder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	activity, creator, participants := fanOutFixture(t, "soon", "later")

	if err := env.scheduled.CreateForAllParticipants(ctx, activity, creator, participants); err != nil {
		t.Fatalf("CreateForAllParticipants: %v", err)
	}

	records, err := env.scheduled.ListUserScheduled(ctx, "carol-uid")
	if err != nil {
		t.Fatalf("ListUserScheduled: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if !records[0].NotificationSent {
		t.Error("reminder with unparseable start was left pending")
	}
}
