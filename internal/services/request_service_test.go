package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
)

func TestCreateJoinRequestDuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	joiner := env.createUser(t, "bob", true)
	activityID := env.createActivity(t, creator, 0, 0, 2)

	if _, err := env.requests.CreateJoinRequest(ctx, joiner, activityID); err != nil {
		t.Fatalf("first CreateJoinRequest: %v", err)
	}

	_, err := env.requests.CreateJoinRequest(ctx, joiner, activityID)
	if !errors.Is(err, services.ErrDuplicateRequest) {
		t.Errorf("second CreateJoinRequest = %v, want ErrDuplicateRequest", err)
	}
}

func TestCreateJoinRequestAfterDeclineSucceeds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	joiner := env.createUser(t, "bob", true)
	activityID := env.createActivity(t, creator, 0, 0, 2)

	requestID, err := env.requests.CreateJoinRequest(ctx, joiner, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest: %v", err)
	}
	if err := env.requests.DeclineJoinRequest(ctx, creator, requestID); err != nil {
		t.Fatalf("DeclineJoinRequest: %v", err)
	}

	// The previous request reached a terminal state, so the triple is free
	if _, err := env.requests.CreateJoinRequest(ctx, joiner, activityID); err != nil {
		t.Errorf("CreateJoinRequest after decline = %v, want success", err)
	}
}

func TestCreateJoinRequestUnknownActivity(t *testing.T) {
	env := newTestEnv(t)
	joiner := env.createUser(t, "bob", true)

	_, err := env.requests.CreateJoinRequest(context.Background(), joiner, "missing")
	if !errors.Is(err, services.ErrActivityNotFound) {
		t.Errorf("CreateJoinRequest(missing activity) = %v, want ErrActivityNotFound", err)
	}
}

func TestCreateJoinRequestOwnActivityRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	activityID := env.createActivity(t, creator, 0, 0, 2)

	if _, err := env.requests.CreateJoinRequest(ctx, creator, activityID); err == nil {
		t.Error("joining own activity succeeded")
	}
}

func TestAcceptJoinRequestNotFound(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, "alice", true)

	err := env.requests.AcceptJoinRequest(context.Background(), creator, "missing")
	if !errors.Is(err, services.ErrRequestNotFound) {
		t.Errorf("AcceptJoinRequest(missing) = %v, want ErrRequestNotFound", err)
	}
}

func TestAcceptJoinRequestRecipientOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	joiner := env.createUser(t, "bob", true)
	stranger := env.createUser(t, "mallory", true)
	activityID := env.createActivity(t, creator, 0, 0, 2)

	requestID, err := env.requests.CreateJoinRequest(ctx, joiner, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest: %v", err)
	}

	if err := env.requests.AcceptJoinRequest(ctx, stranger, requestID); err == nil {
		t.Error("non-recipient accepted a request")
	}
}

func TestAcceptJoinRequestTerminalStateRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	joiner := env.createUser(t, "bob", true)
	activityID := env.createActivity(t, creator, 0, 0, 2)

	requestID, err := env.requests.CreateJoinRequest(ctx, joiner, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest: %v", err)
	}
	if err := env.requests.DeclineJoinRequest(ctx, creator, requestID); err != nil {
		t.Fatalf("DeclineJoinRequest: %v", err)
	}

	if err := env.requests.AcceptJoinRequest(ctx, creator, requestID); err == nil {
		t.Error("accept succeeded on a declined (terminal) request")
	}
	if err := env.requests.DeclineJoinRequest(ctx, creator, requestID); err == nil {
		t.Error("decline succeeded twice on the same request")
	}
}

func TestListUserNotificationsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	b := env.createUser(t, "bob", true)
	c := env.createUser(t, "carol", true)
	activityID := env.createActivity(t, creator, 0, 0, 3)

	first, err := env.requests.CreateJoinRequest(ctx, b, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest(bob): %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := env.requests.CreateJoinRequest(ctx, c, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest(carol): %v", err)
	}

	notifications, err := env.requests.ListUserNotifications(ctx, creator)
	if err != nil {
		t.Fatalf("ListUserNotifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notifications))
	}
	if notifications[0].RequestID != second || notifications[1].RequestID != first {
		t.Errorf("order = [%s, %s], want newest first", notifications[0].RequestID, notifications[1].RequestID)
	}
	if notifications[0].Status != models.StatusPending {
		t.Errorf("status = %s, want pending", notifications[0].Status)
	}
}

// End-to-end: requiredMembers=1, creator at (0,0), joiner ~0.1 km away.
// Request -> accept must fill the roster and fan out one scheduled record
// each for creator and joiner, cross-referencing each other.
func TestRequestAcceptScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "alice", true)
	joiner := env.createUser(t, "bob", true)
	env.setLocation(t, creator, 0, 0)
	env.setLocation(t, joiner, 0, 0.001)
	if err := env.userRepo.UpdatePushToken(ctx, creator, "tok-alice"); err != nil {
		t.Fatalf("UpdatePushToken(alice): %v", err)
	}
	if err := env.userRepo.UpdatePushToken(ctx, joiner, "tok-bob"); err != nil {
		t.Fatalf("UpdatePushToken(bob): %v", err)
	}

	activityID := env.createActivity(t, creator, 0, 0, 1)

	requestID, err := env.requests.CreateJoinRequest(ctx, joiner, activityID)
	if err != nil {
		t.Fatalf("CreateJoinRequest: %v", err)
	}

	if err := env.requests.AcceptJoinRequest(ctx, creator, requestID); err != nil {
		t.Fatalf("AcceptJoinRequest: %v", err)
	}

	participants, err := env.roster.GetParticipants(ctx, activityID)
	if err != nil {
		t.Fatalf("GetParticipants: %v", err)
	}
	if len(participants) != 1 {
		t.Fatalf("roster has %d entries, want 1", len(participants))
	}
	if participants[0].UserID != joiner {
		t.Errorf("participant = %s, want %s", participants[0].UserID, joiner)
	}

	count, _ := env.roster.GetJoinedCount(ctx, activityID)
	if count < 1 {
		t.Errorf("joined count = %d, want >= requiredMembers", count)
	}

	for uid, wantPartner := range map[string]string{creator: "bob", joiner: "alice"} {
		scheduled, err := env.scheduled.ListUserScheduled(ctx, uid)
		if err != nil {
			t.Fatalf("ListUserScheduled(%s): %v", uid, err)
		}
		if len(scheduled) != 1 {
			t.Fatalf("user %s has %d scheduled activities, want 1", uid, len(scheduled))
		}
		if !strings.Contains(scheduled[0].PartnerName, wantPartner) {
			t.Errorf("partnerName for %s = %q, want to contain %q", uid, scheduled[0].PartnerName, wantPartner)
		}
	}

	// One push for the join request, one for the acceptance
	if got := env.sender.count(); got != 2 {
		t.Errorf("recorded %d pushes, want 2", got)
	}
}
