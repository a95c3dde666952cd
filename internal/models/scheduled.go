package models

import "time"

// ScheduledActivity is a per-user confirmed-attendance record, materialized
// once an activity's roster reaches its required member count. Activity
// fields are denormalized so the record is self-contained.
//
// PartnerName carries every other member (comma-joined) but PartnerUID and
// PartnerProfileImage keep only the first other member, mirroring the mobile
// app's 1:1 display. Kept as-is for group activities too.
type ScheduledActivity struct {
	ScheduledID         string    `firestore:"scheduledId" json:"scheduledId"`
	ActivityID          string    `firestore:"activityId" json:"activityId"`
	UserID              string    `firestore:"userId" json:"userId"`
	Activity            string    `firestore:"activity" json:"activity"`
	Level               string    `firestore:"level" json:"level"`
	Location            string    `firestore:"location" json:"location"`
	LocationLat         float64   `firestore:"locationLat" json:"locationLat"`
	LocationLong        float64   `firestore:"locationLong" json:"locationLong"`
	Date                string    `firestore:"date" json:"date"`
	Time                string    `firestore:"time" json:"time"`
	Notes               string    `firestore:"notes" json:"notes,omitempty"`
	RequiredMembers     int       `firestore:"requiredMembers" json:"requiredMembers"`
	PartnerName         string    `firestore:"partnerName" json:"partnerName"`
	PartnerUID          string    `firestore:"partnerUid" json:"partnerUid"`
	PartnerProfileImage string    `firestore:"partnerProfileImage" json:"partnerProfileImage,omitempty"`
	NotifyAt            time.Time `firestore:"notifyAt" json:"notifyAt"`
	NotificationSent    bool      `firestore:"notificationSent" json:"notificationSent"`
	NotificationID      string    `firestore:"notificationId" json:"notificationId,omitempty"`
	CreatedAt           time.Time `firestore:"createdAt" json:"createdAt"`
}
