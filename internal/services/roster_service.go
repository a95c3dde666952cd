package services

import (
	"context"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
)

type RosterService struct {
	participantRepo *repository.ParticipantRepository
	activityRepo    *repository.ActivityRepository
}

func NewRosterService(participantRepo *repository.ParticipantRepository, activityRepo *repository.ActivityRepository) *RosterService {
	return &RosterService{
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
	}
}

// AddParticipant idempotently adds an accepted participant to an activity's
// roster. A second call for the same (activityId, userId) is a no-op.
//
// The existence check and the insert are separate writes; two concurrent
// calls can race past the check and both insert. The store offers no
// compound uniqueness constraint, so that window is accepted.
func (s *RosterService) AddParticipant(ctx context.Context, activityID, userID, userName, profileImage string) (*models.AddParticipantResult, error) {
	existing, err := s.participantRepo.Find(ctx, activityID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &models.AddParticipantResult{AlreadyJoined: true}, nil
	}

	if _, err := s.participantRepo.Add(ctx, activityID, userID, userName, profileImage); err != nil {
		return nil, err
	}

	// Re-fetch after the insert so fullness reflects the updated roster
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	required := activity.RequiredMembers
	if required <= 0 {
		required = 1
	}

	count, err := s.participantRepo.CountByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	isFull := count >= required
	return &models.AddParticipantResult{
		IsFull:                isFull,
		ShouldCreateScheduled: isFull,
	}, nil
}

// GetParticipants returns the accepted participants of an activity.
func (s *RosterService) GetParticipants(ctx context.Context, activityID string) ([]*models.Participant, error) {
	return s.participantRepo.ListByActivity(ctx, activityID)
}

// GetJoinedCount returns the number of accepted participants.
func (s *RosterService) GetJoinedCount(ctx context.Context, activityID string) (int, error) {
	return s.participantRepo.CountByActivity(ctx, activityID)
}
