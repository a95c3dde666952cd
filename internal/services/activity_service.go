package services

import (
	"context"
	"errors"
	"sort"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
	"github.com/dev-m-younas/Sport-Link-sub000/pkg/geo"
)

// ErrActivityNotFound is returned when an activity ID resolves to nothing.
var ErrActivityNotFound = errors.New("activity not found")

// recentFetchWindow bounds how many recent activities the radius search
// pulls before filtering client-side. Older-but-nearby activities beyond
// the window are missed; acceptable while activity volume is low.
const recentFetchWindow = 50

type ActivityService struct {
	activityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// CreateActivity creates a new activity owned by creatorUID. Dates and
// coordinate ranges are not validated; the caller owns them.
func (s *ActivityService) CreateActivity(ctx context.Context, creatorUID string, req *models.CreateActivityRequest) (string, error) {
	if creatorUID == "" {
		return "", errors.New("user not authenticated")
	}

	requiredMembers := req.RequiredMembers
	if requiredMembers <= 0 {
		requiredMembers = 1
	}

	activity := &models.Activity{
		CreatorUID:      creatorUID,
		CreatorLat:      req.CreatorLat,
		CreatorLong:     req.CreatorLong,
		Location:        req.Location,
		LocationLat:     req.LocationLat,
		LocationLong:    req.LocationLong,
		Activity:        req.Activity,
		Level:           req.Level,
		Date:            req.Date,
		Time:            req.Time,
		Notes:           req.Notes,
		VideoURI:        req.VideoURI,
		RequiredMembers: requiredMembers,
	}

	return s.activityRepo.Create(ctx, activity)
}

// ListWithinRadius returns recent activities whose venue lies within
// radiusKm of (lat, lon), newest first, excluding excludeUserID's own
// activities when set. The fetch is bounded and filtered client-side rather
// than served by a geo index.
func (s *ActivityService) ListWithinRadius(ctx context.Context, lat, lon, radiusKm float64, excludeUserID string) ([]*models.Activity, error) {
	recent, err := s.activityRepo.ListRecent(ctx, recentFetchWindow)
	if err != nil {
		return nil, err
	}

	nearby := make([]*models.Activity, 0, len(recent))
	for _, activity := range recent {
		if excludeUserID != "" && activity.CreatorUID == excludeUserID {
			continue
		}
		if geo.DistanceKm(lat, lon, activity.LocationLat, activity.LocationLong) <= radiusKm {
			nearby = append(nearby, activity)
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].CreatedAt.After(nearby[j].CreatedAt)
	})

	return nearby, nil
}

// ListUserActivities returns the activities a user created, newest first.
func (s *ActivityService) ListUserActivities(ctx context.Context, userID string) ([]*models.Activity, error) {
	return s.activityRepo.ListByCreator(ctx, userID)
}

// GetActivity fetches a single activity.
func (s *ActivityService) GetActivity(ctx context.Context, activityID string) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}
