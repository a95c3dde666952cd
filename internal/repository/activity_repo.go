package repository

import (
	"context"
	"sort"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type ActivityRepository struct {
	store store.Store
}

func NewActivityRepository(s store.Store) *ActivityRepository {
	return &ActivityRepository{store: s}
}

// Create inserts a new activity and returns its generated ID.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) (string, error) {
	// videoUri is written as null when absent; the store contract has no
	// notion of an undefined field.
	data := map[string]interface{}{
		"creatorUid":      activity.CreatorUID,
		"creatorLat":      activity.CreatorLat,
		"creatorLong":     activity.CreatorLong,
		"location":        activity.Location,
		"locationLat":     activity.LocationLat,
		"locationLong":    activity.LocationLong,
		"activity":        activity.Activity,
		"level":           activity.Level,
		"date":            activity.Date,
		"time":            activity.Time,
		"notes":           activity.Notes,
		"videoUri":        nil,
		"requiredMembers": activity.RequiredMembers,
		"createdAt":       store.ServerTimestamp,
	}
	if activity.VideoURI != nil {
		data["videoUri"] = *activity.VideoURI
	}

	activityID, err := r.store.Insert(ctx, "activities", data)
	if err != nil {
		return "", err
	}

	// Stamp the generated ID back into the document
	err = r.store.Update(ctx, "activities", activityID, map[string]interface{}{
		"activityId": activityID,
	})
	if err != nil {
		return "", err
	}

	return activityID, nil
}

// GetByID retrieves an activity by ID, returning store.ErrNotFound when missing.
func (r *ActivityRepository) GetByID(ctx context.Context, activityID string) (*models.Activity, error) {
	doc, err := r.store.GetByID(ctx, "activities", activityID)
	if err != nil {
		return nil, err
	}
	return activityFromDoc(doc), nil
}

// ListRecent retrieves the most recent activities ordered by creation time
// descending, bounded by limit.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	docs, err := r.store.Query(ctx, "activities", nil,
		&store.OrderBy{Path: "createdAt", Desc: true}, limit)
	if err != nil {
		return nil, err
	}

	activities := make([]*models.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, activityFromDoc(doc))
	}
	return activities, nil
}

// ListByCreator retrieves a user's own activities, newest first.
func (r *ActivityRepository) ListByCreator(ctx context.Context, creatorUID string) ([]*models.Activity, error) {
	docs, err := r.store.Query(ctx, "activities",
		[]store.Filter{{Path: "creatorUid", Op: "==", Value: creatorUID}}, nil, 0)
	if err != nil {
		return nil, err
	}

	activities := make([]*models.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, activityFromDoc(doc))
	}

	// Client-side sort: the equality query carries no ordering
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	return activities, nil
}

// ListAll scans the whole activity collection, newest first. Used by the
// nearby-player position fallback.
func (r *ActivityRepository) ListAll(ctx context.Context) ([]*models.Activity, error) {
	docs, err := r.store.Query(ctx, "activities", nil,
		&store.OrderBy{Path: "createdAt", Desc: true}, 0)
	if err != nil {
		return nil, err
	}

	activities := make([]*models.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, activityFromDoc(doc))
	}
	return activities, nil
}

func activityFromDoc(doc *store.Document) *models.Activity {
	return &models.Activity{
		ActivityID:      doc.ID,
		CreatorUID:      docString(doc, "creatorUid"),
		CreatorLat:      docFloat(doc, "creatorLat"),
		CreatorLong:     docFloat(doc, "creatorLong"),
		Location:        docString(doc, "location"),
		LocationLat:     docFloat(doc, "locationLat"),
		LocationLong:    docFloat(doc, "locationLong"),
		Activity:        docString(doc, "activity"),
		Level:           docString(doc, "level"),
		Date:            docString(doc, "date"),
		Time:            docString(doc, "time"),
		Notes:           docString(doc, "notes"),
		VideoURI:        docStringPtr(doc, "videoUri"),
		RequiredMembers: docInt(doc, "requiredMembers"),
		CreatedAt:       docTime(doc, "createdAt"),
	}
}
