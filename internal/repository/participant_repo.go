package repository

import (
	"context"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type ParticipantRepository struct {
	store store.Store
}

func NewParticipantRepository(s store.Store) *ParticipantRepository {
	return &ParticipantRepository{store: s}
}

// Find returns the roster record for (activityId, userId), or nil when the
// user has not joined the activity.
func (r *ParticipantRepository) Find(ctx context.Context, activityID, userID string) (*models.Participant, error) {
	docs, err := r.store.Query(ctx, "activityParticipants", []store.Filter{
		{Path: "activityId", Op: "==", Value: activityID},
		{Path: "userId", Op: "==", Value: userID},
	}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return participantFromDoc(docs[0]), nil
}

// Add inserts a roster record. Callers are expected to Find first; the
// store enforces no uniqueness on the (activityId, userId) pair.
func (r *ParticipantRepository) Add(ctx context.Context, activityID, userID, userName, profileImage string) (string, error) {
	participantID, err := r.store.Insert(ctx, "activityParticipants", map[string]interface{}{
		"activityId":       activityID,
		"userId":           userID,
		"status":           "accepted",
		"userName":         userName,
		"userProfileImage": profileImage,
		"createdAt":        store.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	err = r.store.Update(ctx, "activityParticipants", participantID, map[string]interface{}{
		"participantId": participantID,
	})
	if err != nil {
		return "", err
	}

	return participantID, nil
}

// ListByActivity retrieves the accepted participants of an activity.
func (r *ParticipantRepository) ListByActivity(ctx context.Context, activityID string) ([]*models.Participant, error) {
	docs, err := r.store.Query(ctx, "activityParticipants", []store.Filter{
		{Path: "activityId", Op: "==", Value: activityID},
		{Path: "status", Op: "==", Value: "accepted"},
	}, nil, 0)
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Participant, 0, len(docs))
	for _, doc := range docs {
		participants = append(participants, participantFromDoc(doc))
	}
	return participants, nil
}

// CountByActivity returns the number of accepted participants.
func (r *ParticipantRepository) CountByActivity(ctx context.Context, activityID string) (int, error) {
	participants, err := r.ListByActivity(ctx, activityID)
	if err != nil {
		return 0, err
	}
	return len(participants), nil
}

func participantFromDoc(doc *store.Document) *models.Participant {
	return &models.Participant{
		ParticipantID:    doc.ID,
		ActivityID:       docString(doc, "activityId"),
		UserID:           docString(doc, "userId"),
		Status:           docString(doc, "status"),
		UserName:         docString(doc, "userName"),
		UserProfileImage: docString(doc, "userProfileImage"),
		CreatedAt:        docTime(doc, "createdAt"),
	}
}
