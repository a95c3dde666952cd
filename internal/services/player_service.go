package services

import (
	"context"
	"sort"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/repository"
	"github.com/dev-m-younas/Sport-Link-sub000/pkg/geo"
)

type PlayerService struct {
	userRepo     *repository.UserRepository
	activityRepo *repository.ActivityRepository
}

func NewPlayerService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *PlayerService {
	return &PlayerService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// GetNearbyPlayers scans all profiles and activities and returns onboarded
// players within radiusKm of (lat, lon), sorted nearest first, with
// distances rounded to one decimal. A player's position is their profile
// coordinates when set, otherwise the coordinates of their most recent
// activity creation.
//
// This is O(users + activities) per call; a geohash or spatial index
// replaces the scan once the user base grows.
func (s *PlayerService) GetNearbyPlayers(ctx context.Context, lat, lon, radiusKm float64, excludeUserID string) ([]*models.NearbyPlayer, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Most recent activity-creation position per creator; activities come
	// back newest first so the first hit wins
	type position struct{ lat, lon float64 }
	lastActivityPos := make(map[string]position)
	for _, activity := range activities {
		if _, ok := lastActivityPos[activity.CreatorUID]; !ok {
			lastActivityPos[activity.CreatorUID] = position{activity.CreatorLat, activity.CreatorLong}
		}
	}

	type candidate struct {
		player   *models.NearbyPlayer
		distance float64
	}

	var candidates []candidate
	seen := make(map[string]bool)
	for _, user := range users {
		if user.UID == excludeUserID || seen[user.UID] {
			continue
		}
		if !user.OnboardingCompleted {
			continue
		}

		var pos position
		switch {
		case user.Latitude != nil && user.Longitude != nil:
			pos = position{*user.Latitude, *user.Longitude}
		default:
			p, ok := lastActivityPos[user.UID]
			if !ok {
				continue // no known position at all
			}
			pos = p
		}

		distance := geo.DistanceKm(lat, lon, pos.lat, pos.lon)
		if distance > radiusKm {
			continue
		}

		seen[user.UID] = true
		candidates = append(candidates, candidate{
			player: &models.NearbyPlayer{
				UID:            user.UID,
				Name:           user.Name,
				ProfileImage:   user.ProfileImage,
				Activities:     user.Activities,
				ExpertiseLevel: user.ExpertiseLevel,
				City:           user.City,
				DistanceKm:     geo.RoundKm(distance),
			},
			distance: distance,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	players := make([]*models.NearbyPlayer, 0, len(candidates))
	for _, c := range candidates {
		players = append(players, c.player)
	}
	return players, nil
}
