package models

import "time"

// RequestStatus represents the status of a join request
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusDeclined RequestStatus = "declined"
)

// CanTransitionTo reports whether a status change is allowed. Accepted and
// declined are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == StatusPending && (next == StatusAccepted || next == StatusDeclined)
}

// JoinRequest is the notification record a prospective participant creates
// for an activity's owner. Only the recipient may accept or decline it.
type JoinRequest struct {
	RequestID          string        `firestore:"requestId" json:"requestId"`
	RecipientUID       string        `firestore:"recipientUid" json:"recipientUid"`
	SenderUID          string        `firestore:"senderUid" json:"senderUid"`
	SenderName         string        `firestore:"senderName" json:"senderName"`
	SenderProfileImage string        `firestore:"senderProfileImage" json:"senderProfileImage,omitempty"`
	ActivityID         string        `firestore:"activityId" json:"activityId"`
	ActivityType       string        `firestore:"activityType" json:"activityType,omitempty"`
	Status             RequestStatus `firestore:"status" json:"status"`
	CreatedAt          time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// CreateJoinRequestBody represents the request body for sending a join request
type CreateJoinRequestBody struct {
	ActivityID string `json:"activityId" binding:"required"`
}

// AcceptDeclineRequestBody represents the request body for accepting or
// declining a join request
type AcceptDeclineRequestBody struct {
	RequestID string `json:"requestId" binding:"required"`
}
