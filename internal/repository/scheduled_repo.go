package repository

import (
	"context"
	"sort"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type ScheduledRepository struct {
	store store.Store
}

func NewScheduledRepository(s store.Store) *ScheduledRepository {
	return &ScheduledRepository{store: s}
}

// FindForUser returns the scheduled record for (activityId, userId), or nil
// when the fan-out has not created one yet.
func (r *ScheduledRepository) FindForUser(ctx context.Context, activityID, userID string) (*models.ScheduledActivity, error) {
	docs, err := r.store.Query(ctx, "scheduledActivities", []store.Filter{
		{Path: "activityId", Op: "==", Value: activityID},
		{Path: "userId", Op: "==", Value: userID},
	}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return scheduledFromDoc(docs[0]), nil
}

// Create inserts a scheduled activity record and returns its generated ID.
func (r *ScheduledRepository) Create(ctx context.Context, sa *models.ScheduledActivity) (string, error) {
	scheduledID, err := r.store.Insert(ctx, "scheduledActivities", map[string]interface{}{
		"activityId":          sa.ActivityID,
		"userId":              sa.UserID,
		"activity":            sa.Activity,
		"level":               sa.Level,
		"location":            sa.Location,
		"locationLat":         sa.LocationLat,
		"locationLong":        sa.LocationLong,
		"date":                sa.Date,
		"time":                sa.Time,
		"notes":               sa.Notes,
		"requiredMembers":     sa.RequiredMembers,
		"partnerName":         sa.PartnerName,
		"partnerUid":          sa.PartnerUID,
		"partnerProfileImage": sa.PartnerProfileImage,
		"notifyAt":            sa.NotifyAt,
		"notificationSent":    sa.NotificationSent,
		"notificationId":      sa.NotificationID,
		"createdAt":           store.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	err = r.store.Update(ctx, "scheduledActivities", scheduledID, map[string]interface{}{
		"scheduledId": scheduledID,
	})
	if err != nil {
		return "", err
	}

	return scheduledID, nil
}

// ListByUser retrieves a user's scheduled activities, newest first.
func (r *ScheduledRepository) ListByUser(ctx context.Context, userID string) ([]*models.ScheduledActivity, error) {
	docs, err := r.store.Query(ctx, "scheduledActivities",
		[]store.Filter{{Path: "userId", Op: "==", Value: userID}}, nil, 0)
	if err != nil {
		return nil, err
	}

	scheduled := make([]*models.ScheduledActivity, 0, len(docs))
	for _, doc := range docs {
		scheduled = append(scheduled, scheduledFromDoc(doc))
	}

	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].CreatedAt.After(scheduled[j].CreatedAt)
	})

	return scheduled, nil
}

// ListDueReminders returns records whose reminder is due but not yet sent.
func (r *ScheduledRepository) ListDueReminders(ctx context.Context, now time.Time) ([]*models.ScheduledActivity, error) {
	docs, err := r.store.Query(ctx, "scheduledActivities", []store.Filter{
		{Path: "notificationSent", Op: "==", Value: false},
		{Path: "notifyAt", Op: "<=", Value: now},
	}, nil, 0)
	if err != nil {
		return nil, err
	}

	scheduled := make([]*models.ScheduledActivity, 0, len(docs))
	for _, doc := range docs {
		scheduled = append(scheduled, scheduledFromDoc(doc))
	}
	return scheduled, nil
}

// MarkNotificationSent flips the reminder flag and records the notification ID.
func (r *ScheduledRepository) MarkNotificationSent(ctx context.Context, scheduledID, notificationID string) error {
	return r.store.Update(ctx, "scheduledActivities", scheduledID, map[string]interface{}{
		"notificationSent": true,
		"notificationId":   notificationID,
	})
}

func scheduledFromDoc(doc *store.Document) *models.ScheduledActivity {
	return &models.ScheduledActivity{
		ScheduledID:         doc.ID,
		ActivityID:          docString(doc, "activityId"),
		UserID:              docString(doc, "userId"),
		Activity:            docString(doc, "activity"),
		Level:               docString(doc, "level"),
		Location:            docString(doc, "location"),
		LocationLat:         docFloat(doc, "locationLat"),
		LocationLong:        docFloat(doc, "locationLong"),
		Date:                docString(doc, "date"),
		Time:                docString(doc, "time"),
		Notes:               docString(doc, "notes"),
		RequiredMembers:     docInt(doc, "requiredMembers"),
		PartnerName:         docString(doc, "partnerName"),
		PartnerUID:          docString(doc, "partnerUid"),
		PartnerProfileImage: docString(doc, "partnerProfileImage"),
		NotifyAt:            docTime(doc, "notifyAt"),
		NotificationSent:    docBool(doc, "notificationSent"),
		NotificationID:      docString(doc, "notificationId"),
		CreatedAt:           docTime(doc, "createdAt"),
	}
}
