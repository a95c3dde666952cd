package models

import "time"

// Activity represents an event a user creates and invites others to join.
// Once created it is an immutable target for join requests.
type Activity struct {
	ActivityID      string    `firestore:"activityId" json:"activityId"`
	CreatorUID      string    `firestore:"creatorUid" json:"creatorUid"`
	CreatorLat      float64   `firestore:"creatorLat" json:"creatorLat"`
	CreatorLong     float64   `firestore:"creatorLong" json:"creatorLong"`
	Location        string    `firestore:"location" json:"location"` // venue name
	LocationLat     float64   `firestore:"locationLat" json:"locationLat"`
	LocationLong    float64   `firestore:"locationLong" json:"locationLong"`
	Activity        string    `firestore:"activity" json:"activity"` // e.g. "tennis"
	Level           string    `firestore:"level" json:"level"`
	Date            string    `firestore:"date" json:"date"` // "2006-01-02"
	Time            string    `firestore:"time" json:"time"` // "15:04"
	Notes           string    `firestore:"notes" json:"notes,omitempty"`
	VideoURI        *string   `firestore:"videoUri" json:"videoUri"` // null when absent
	RequiredMembers int       `firestore:"requiredMembers" json:"requiredMembers"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}

// CreateActivityRequest represents the create-activity request body.
// Dates and coordinate ranges are not validated here; the caller owns them.
type CreateActivityRequest struct {
	CreatorLat      float64 `json:"creatorLat"`
	CreatorLong     float64 `json:"creatorLong"`
	Location        string  `json:"location" binding:"required"`
	LocationLat     float64 `json:"locationLat"`
	LocationLong    float64 `json:"locationLong"`
	Activity        string  `json:"activity" binding:"required"`
	Level           string  `json:"level"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Notes           string  `json:"notes"`
	VideoURI        *string `json:"videoUri"`
	RequiredMembers int     `json:"requiredMembers"`
}
