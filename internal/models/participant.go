package models

import "time"

// Participant is the roster record created when a join request is accepted.
// At most one exists per (activityId, userId); status is always "accepted"
// because pending asks live in the notifications collection, not the roster.
type Participant struct {
	ParticipantID    string    `firestore:"participantId" json:"participantId"`
	ActivityID       string    `firestore:"activityId" json:"activityId"`
	UserID           string    `firestore:"userId" json:"userId"`
	Status           string    `firestore:"status" json:"status"`
	UserName         string    `firestore:"userName" json:"userName"`                             // snapshot at accept time
	UserProfileImage string    `firestore:"userProfileImage" json:"userProfileImage,omitempty"` // snapshot at accept time
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
}

// AddParticipantResult reports the outcome of an idempotent roster add.
type AddParticipantResult struct {
	AlreadyJoined         bool `json:"alreadyJoined"`
	IsFull                bool `json:"isFull"`
	ShouldCreateScheduled bool `json:"shouldCreateScheduled"`
}
