package models

// NearbyPlayer is a search result from the nearby-player scan: an onboarded
// profile within the requested radius, with its distance from the reference
// point rounded to one decimal.
type NearbyPlayer struct {
	UID            string   `json:"uid"`
	Name           string   `json:"name"`
	ProfileImage   string   `json:"profileImage,omitempty"`
	Activities     []string `json:"activities"`
	ExpertiseLevel string   `json:"expertiseLevel,omitempty"`
	City           string   `json:"city,omitempty"`
	DistanceKm     float64  `json:"distanceKm"`
}
