package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
)

// reminderLead is how long before an activity's start the reminder fires.
const reminderLead = time.Hour

// ScheduledMember identifies one member of a full activity during fan-out.
type ScheduledMember struct {
	UID          string
	Name         string
	ProfileImage string
}

type ScheduledService struct {
	scheduledRepo *repository.ScheduledRepository
}

func NewScheduledService(scheduledRepo *repository.ScheduledRepository) *ScheduledService {
	return &ScheduledService{scheduledRepo: scheduledRepo}
}

// CreateForAllParticipants materializes one scheduled-activity record per
// member of the union of participants and the creator. Members that already
// have a record for this activity are skipped, so re-running the fan-out is
// a no-op.
//
// PartnerName joins every other member's name; PartnerUID and the partner
// image keep only the first other member, matching the mobile app's 1:1
// display even for group activities.
func (s *ScheduledService) CreateForAllParticipants(ctx context.Context, activity *models.Activity, creator ScheduledMember, participants []*models.Participant) error {
	members := make([]ScheduledMember, 0, len(participants)+1)
	seen := make(map[string]bool)
	for _, p := range participants {
		if seen[p.UserID] {
			continue
		}
		seen[p.UserID] = true
		members = append(members, ScheduledMember{
			UID:          p.UserID,
			Name:         p.UserName,
			ProfileImage: p.UserProfileImage,
		})
	}
	if !seen[creator.UID] {
		members = append(members, creator)
	}

	notifyAt, expired := reminderTime(activity.Date, activity.Time)

	for _, member := range members {
		existing, err := s.scheduledRepo.FindForUser(ctx, activity.ActivityID, member.UID)
		if err != nil {
			log.Printf("⚠️ Failed to check scheduled activity for %s: %v", member.UID, err)
			continue
		}
		if existing != nil {
			continue
		}

		var partnerNames []string
		var first *ScheduledMember
		for i := range members {
			if members[i].UID == member.UID {
				continue
			}
			partnerNames = append(partnerNames, members[i].Name)
			if first == nil {
				first = &members[i]
			}
		}

		record := &models.ScheduledActivity{
			ActivityID:      activity.ActivityID,
			UserID:          member.UID,
			Activity:        activity.Activity,
			Level:           activity.Level,
			Location:        activity.Location,
			LocationLat:     activity.LocationLat,
			LocationLong:    activity.LocationLong,
			Date:            activity.Date,
			Time:            activity.Time,
			Notes:           activity.Notes,
			RequiredMembers: activity.RequiredMembers,
			PartnerName:     strings.Join(partnerNames, ", "),
			NotifyAt:        notifyAt,
			// A reminder in the past never fires
			NotificationSent: expired,
		}
		if first != nil {
			record.PartnerUID = first.UID
			record.PartnerProfileImage = first.ProfileImage
		}

		if _, err := s.scheduledRepo.Create(ctx, record); err != nil {
			log.Printf("⚠️ Failed to create scheduled activity for %s: %v", member.UID, err)
		}
	}

	return nil
}

// ListUserScheduled returns a user's scheduled activities, newest first.
func (s *ScheduledService) ListUserScheduled(ctx context.Context, userID string) ([]*models.ScheduledActivity, error) {
	return s.scheduledRepo.ListByUser(ctx, userID)
}

// reminderTime computes the reminder instant one hour before the activity
// starts. The second return is true when the reminder should be skipped:
// the instant has passed already, or the date/time does not parse.
func reminderTime(date, startTime string) (time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, true
	}
	notifyAt := start.Add(-reminderLead)
	return notifyAt, notifyAt.Before(time.Now())
}
