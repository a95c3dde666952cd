package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type sentPush struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// fakeSender records pushes instead of delivering them.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentPush
}

func (f *fakeSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentPush{Token: token, Title: title, Body: body, Data: data})
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type testEnv struct {
	store         *store.MemoryStore
	userRepo      *repository.UserRepository
	activityRepo  *repository.ActivityRepository
	scheduledRepo *repository.ScheduledRepository
	sender        *fakeSender

	activities *services.ActivityService
	roster     *services.RosterService
	scheduled  *services.ScheduledService
	requests   *services.RequestService
	players    *services.PlayerService
	reminders  *services.ReminderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	memStore := store.NewMemoryStore()
	userRepo := repository.NewUserRepository(memStore)
	activityRepo := repository.NewActivityRepository(memStore)
	participantRepo := repository.NewParticipantRepository(memStore)
	requestRepo := repository.NewRequestRepository(memStore)
	scheduledRepo := repository.NewScheduledRepository(memStore)
	sender := &fakeSender{}

	roster := services.NewRosterService(participantRepo, activityRepo)
	scheduled := services.NewScheduledService(scheduledRepo)

	return &testEnv{
		store:         memStore,
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		scheduledRepo: scheduledRepo,
		sender:        sender,
		activities:    services.NewActivityService(activityRepo),
		roster:        roster,
		scheduled:     scheduled,
		requests:      services.NewRequestService(requestRepo, activityRepo, userRepo, roster, scheduled, sender),
		players:       services.NewPlayerService(userRepo, activityRepo),
		reminders:     services.NewReminderService(scheduledRepo, userRepo, sender, time.Minute),
	}
}

func (e *testEnv) createUser(t *testing.T, name string, onboarded bool) string {
	t.Helper()

	uid, err := e.userRepo.Create(context.Background(), &models.UserProfile{
		Name:  name,
		Email: name + "@example.com",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}

	if onboarded {
		err := e.userRepo.CompleteOnboarding(context.Background(), uid, &models.CompleteOnboardingRequest{
			Activities:     []string{"tennis"},
			ExpertiseLevel: "intermediate",
		})
		if err != nil {
			t.Fatalf("complete onboarding for %s: %v", name, err)
		}
	}

	return uid
}

func (e *testEnv) setLocation(t *testing.T, uid string, lat, lon float64) {
	t.Helper()
	if err := e.userRepo.UpdateLocation(context.Background(), uid, lat, lon); err != nil {
		t.Fatalf("set location for %s: %v", uid, err)
	}
}

// createActivity builds an activity with a start far enough in the future
// that reminders stay pending.
func (e *testEnv) createActivity(t *testing.T, creatorUID string, lat, lon float64, requiredMembers int) string {
	t.Helper()

	start := time.Now().Add(48 * time.Hour)
	activityID, err := e.activities.CreateActivity(context.Background(), creatorUID, &models.CreateActivityRequest{
		CreatorLat:      lat,
		CreatorLong:     lon,
		Location:        "City Courts",
		LocationLat:     lat,
		LocationLong:    lon,
		Activity:        "tennis",
		Level:           "intermediate",
		Date:            start.Format("2006-01-02"),
		Time:            start.Format("15:04"),
		RequiredMembers: requiredMembers,
	})
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}

	// The memory store stamps creation time from the wall clock; keep
	// successive inserts distinguishable for recency ordering
	time.Sleep(2 * time.Millisecond)

	return activityID
}
