package models

import "time"

// UserProfile represents a player profile in the system
type UserProfile struct {
	UID                 string    `firestore:"uid" json:"uid"`
	Name                string    `firestore:"name" json:"name"`
	Email               string    `firestore:"email" json:"email"`
	PasswordHash        string    `firestore:"passwordHash" json:"-"` // Don't expose in JSON
	Phone               string    `firestore:"phone" json:"phone,omitempty"`
	DOB                 string    `firestore:"dob" json:"dob,omitempty"`
	Gender              string    `firestore:"gender" json:"gender,omitempty"`
	Country             string    `firestore:"country" json:"country,omitempty"`
	City                string    `firestore:"city" json:"city,omitempty"`
	ProfileImage        string    `firestore:"profileImage" json:"profileImage,omitempty"`
	Activities          []string  `firestore:"activities" json:"activities"` // interest tags
	ExpertiseLevel      string    `firestore:"expertiseLevel" json:"expertiseLevel,omitempty"`
	OnboardingCompleted bool      `firestore:"onboardingCompleted" json:"onboardingCompleted"`
	Latitude            *float64  `firestore:"latitude" json:"latitude,omitempty"` // last known position
	Longitude           *float64  `firestore:"longitude" json:"longitude,omitempty"`
	PushToken           string    `firestore:"pushToken" json:"pushToken,omitempty"`
	CreatedAt           time.Time `firestore:"createdAt" json:"createdAt"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdatePushTokenRequest represents the push token update request
type UpdatePushTokenRequest struct {
	PushToken string `json:"pushToken" binding:"required"`
}

// CompleteOnboardingRequest carries the profile attributes collected during
// onboarding. Submitting it marks the profile as onboarded.
type CompleteOnboardingRequest struct {
	Phone          string   `json:"phone"`
	DOB            string   `json:"dob"`
	Gender         string   `json:"gender"`
	Country        string   `json:"country"`
	City           string   `json:"city"`
	ProfileImage   string   `json:"profileImage"`
	Activities     []string `json:"activities" binding:"required,min=1"`
	ExpertiseLevel string   `json:"expertiseLevel" binding:"required"`
}

// UpdateLocationRequest updates the user's last known position
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}
