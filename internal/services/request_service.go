package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/push"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

var (
	// ErrDuplicateRequest is returned when a pending join request already
	// exists for the same (recipient, sender, activity) triple.
	ErrDuplicateRequest = errors.New("duplicate join request")
	// ErrRequestNotFound is returned when a request ID resolves to nothing.
	ErrRequestNotFound = errors.New("notification not found")
)

type RequestService struct {
	requestRepo  *repository.RequestRepository
	activityRepo *repository.ActivityRepository
	userRepo     *repository.UserRepository
	roster       *RosterService
	scheduled    *ScheduledService
	sender       push.Sender
}

func NewRequestService(
	requestRepo *repository.RequestRepository,
	activityRepo *repository.ActivityRepository,
	userRepo *repository.UserRepository,
	roster *RosterService,
	scheduled *ScheduledService,
	sender push.Sender,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		roster:       roster,
		scheduled:    scheduled,
		sender:       sender,
	}
}

// CreateJoinRequest creates a pending join request from senderUID to the
// activity's creator and fires a best-effort push at the recipient.
func (s *RequestService) CreateJoinRequest(ctx context.Context, senderUID, activityID string) (string, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrActivityNotFound
		}
		return "", err
	}

	if activity.CreatorUID == senderUID {
		return "", errors.New("cannot request to join your own activity")
	}

	// Check-then-write: the store has no compound uniqueness constraint,
	// so a concurrent duplicate can still slip through
	existing, err := s.requestRepo.FindPending(ctx, activity.CreatorUID, senderUID, activityID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateRequest
	}

	sender, err := s.userRepo.GetByUID(ctx, senderUID)
	if err != nil {
		return "", errors.New("sender not found")
	}

	requestID, err := s.requestRepo.Create(ctx, &models.JoinRequest{
		RecipientUID:       activity.CreatorUID,
		SenderUID:          senderUID,
		SenderName:         sender.Name,
		SenderProfileImage: sender.ProfileImage,
		ActivityID:         activityID,
		ActivityType:       activity.Activity,
	})
	if err != nil {
		return "", err
	}

	// Best-effort push; never fails the request
	s.notify(ctx, activity.CreatorUID, "New join request",
		fmt.Sprintf("%s wants to join your %s activity", sender.Name, activity.Activity),
		map[string]string{
			"type":       "join_request",
			"requestId":  requestID,
			"activityId": activityID,
			"senderUid":  senderUID,
		})

	return requestID, nil
}

// ListUserNotifications returns a user's incoming join requests, newest first.
func (s *RequestService) ListUserNotifications(ctx context.Context, recipientUID string) ([]*models.JoinRequest, error) {
	return s.requestRepo.ListByRecipient(ctx, recipientUID)
}

// AcceptJoinRequest accepts a pending request: flips its status, adds the
// sender to the roster, and fans out scheduled activities when the roster
// is full. The steps after the status flip run sequentially and are not
// transactional; a failure mid-way is recovered by re-triggering accept.
func (s *RequestService) AcceptJoinRequest(ctx context.Context, recipientUID, requestID string) error {
	req, err := s.loadPendingRequest(ctx, recipientUID, requestID, models.StatusAccepted)
	if err != nil {
		return err
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, models.StatusAccepted); err != nil {
		return err
	}

	// Prefer a fresh profile snapshot for the roster record; fall back to
	// the snapshot taken when the request was created
	senderName := req.SenderName
	senderImage := req.SenderProfileImage
	if sender, err := s.userRepo.GetByUID(ctx, req.SenderUID); err == nil {
		senderName = sender.Name
		senderImage = sender.ProfileImage
	}

	result, err := s.roster.AddParticipant(ctx, req.ActivityID, req.SenderUID, senderName, senderImage)
	if err != nil {
		return err
	}

	if result.IsFull {
		if err := s.fanOutScheduled(ctx, req.ActivityID); err != nil {
			return err
		}
	}

	s.notify(ctx, req.SenderUID, "Request accepted",
		fmt.Sprintf("Your request to join a %s activity was accepted", req.ActivityType),
		map[string]string{
			"type":       "request_accepted",
			"activityId": req.ActivityID,
		})

	return nil
}

// DeclineJoinRequest declines a pending request. No roster side effect; a
// new request for the same triple is allowed afterwards.
func (s *RequestService) DeclineJoinRequest(ctx context.Context, recipientUID, requestID string) error {
	if _, err := s.loadPendingRequest(ctx, recipientUID, requestID, models.StatusDeclined); err != nil {
		return err
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, models.StatusDeclined)
}

func (s *RequestService) loadPendingRequest(ctx context.Context, recipientUID, requestID string, next models.RequestStatus) (*models.JoinRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if req.RecipientUID != recipientUID {
		return nil, errors.New("unauthorized to act on this request")
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, errors.New("join request is not pending")
	}

	return req, nil
}

func (s *RequestService) fanOutScheduled(ctx context.Context, activityID string) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}

	participants, err := s.roster.GetParticipants(ctx, activityID)
	if err != nil {
		return err
	}

	creator := ScheduledMember{UID: activity.CreatorUID}
	if profile, err := s.userRepo.GetByUID(ctx, activity.CreatorUID); err == nil {
		creator.Name = profile.Name
		creator.ProfileImage = profile.ProfileImage
	}

	return s.scheduled.CreateForAllParticipants(ctx, activity, creator, participants)
}

// notify delivers a best-effort push to a user. Missing tokens and send
// failures are logged and discarded.
func (s *RequestService) notify(ctx context.Context, uid, title, body string, data map[string]string) {
	if s.sender == nil {
		return
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		log.Printf("⚠️ Push skipped, user %s not found: %v", uid, err)
		return
	}
	if user.PushToken == "" {
		log.Printf("⚠️ Push skipped, user %s has no push token", uid)
		return
	}

	if err := s.sender.Send(ctx, user.PushToken, title, body, data); err != nil {
		log.Printf("⚠️ Failed to send push to %s: %v", uid, err)
	}
}
