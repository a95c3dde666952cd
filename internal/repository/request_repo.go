package repository

import (
	"context"
	"sort"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type RequestRepository struct {
	store store.Store
}

func NewRequestRepository(s store.Store) *RequestRepository {
	return &RequestRepository{store: s}
}

// Create inserts a new pending join request and returns its generated ID.
func (r *RequestRepository) Create(ctx context.Context, req *models.JoinRequest) (string, error) {
	requestID, err := r.store.Insert(ctx, "notifications", map[string]interface{}{
		"recipientUid":       req.RecipientUID,
		"senderUid":          req.SenderUID,
		"senderName":         req.SenderName,
		"senderProfileImage": req.SenderProfileImage,
		"activityId":         req.ActivityID,
		"activityType":       req.ActivityType,
		"status":             string(models.StatusPending),
		"createdAt":          store.ServerTimestamp,
		"updatedAt":          store.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	err = r.store.Update(ctx, "notifications", requestID, map[string]interface{}{
		"requestId": requestID,
	})
	if err != nil {
		return "", err
	}

	return requestID, nil
}

// GetByID retrieves a join request, returning store.ErrNotFound when missing.
func (r *RequestRepository) GetByID(ctx context.Context, requestID string) (*models.JoinRequest, error) {
	doc, err := r.store.GetByID(ctx, "notifications", requestID)
	if err != nil {
		return nil, err
	}
	return requestFromDoc(doc), nil
}

// FindPending returns the pending request for the (recipient, sender,
// activity) triple, or nil when none exists.
func (r *RequestRepository) FindPending(ctx context.Context, recipientUID, senderUID, activityID string) (*models.JoinRequest, error) {
	docs, err := r.store.Query(ctx, "notifications", []store.Filter{
		{Path: "recipientUid", Op: "==", Value: recipientUID},
		{Path: "senderUid", Op: "==", Value: senderUID},
		{Path: "activityId", Op: "==", Value: activityID},
		{Path: "status", Op: "==", Value: string(models.StatusPending)},
	}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return requestFromDoc(docs[0]), nil
}

// ListByRecipient retrieves a user's incoming join requests, newest first.
func (r *RequestRepository) ListByRecipient(ctx context.Context, recipientUID string) ([]*models.JoinRequest, error) {
	docs, err := r.store.Query(ctx, "notifications",
		[]store.Filter{{Path: "recipientUid", Op: "==", Value: recipientUID}}, nil, 0)
	if err != nil {
		return nil, err
	}

	requests := make([]*models.JoinRequest, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, requestFromDoc(doc))
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

// UpdateStatus flips a request's status and bumps its update time.
func (r *RequestRepository) UpdateStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	return r.store.Update(ctx, "notifications", requestID, map[string]interface{}{
		"status":    string(status),
		"updatedAt": store.ServerTimestamp,
	})
}

func requestFromDoc(doc *store.Document) *models.JoinRequest {
	return &models.JoinRequest{
		RequestID:          doc.ID,
		RecipientUID:       docString(doc, "recipientUid"),
		SenderUID:          docString(doc, "senderUid"),
		SenderName:         docString(doc, "senderName"),
		SenderProfileImage: docString(doc, "senderProfileImage"),
		ActivityID:         docString(doc, "activityId"),
		ActivityType:       docString(doc, "activityType"),
		Status:             models.RequestStatus(docString(doc, "status")),
		CreatedAt:          docTime(doc, "createdAt"),
		UpdatedAt:          docTime(doc, "updatedAt"),
	}
}
