package repository

import (
	"context"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Create inserts a new user profile. The generated document ID becomes the
// user's stable UID.
func (r *UserRepository) Create(ctx context.Context, user *models.UserProfile) (string, error) {
	uid, err := r.store.Insert(ctx, "users", map[string]interface{}{
		"name":                user.Name,
		"email":               user.Email,
		"passwordHash":        user.PasswordHash,
		"phone":               user.Phone,
		"dob":                 user.DOB,
		"gender":              user.Gender,
		"country":             user.Country,
		"city":                user.City,
		"profileImage":        user.ProfileImage,
		"activities":          user.Activities,
		"expertiseLevel":      user.ExpertiseLevel,
		"onboardingCompleted": user.OnboardingCompleted,
		"latitude":            nil,
		"longitude":           nil,
		"pushToken":           user.PushToken,
		"createdAt":           store.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	err = r.store.Update(ctx, "users", uid, map[string]interface{}{"uid": uid})
	if err != nil {
		return "", err
	}

	return uid, nil
}

// GetByUID retrieves a profile by UID, returning store.ErrNotFound when missing.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	doc, err := r.store.GetByID(ctx, "users", uid)
	if err != nil {
		return nil, err
	}
	return userFromDoc(doc), nil
}

// GetByEmail retrieves a profile by email, or store.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	docs, err := r.store.Query(ctx, "users",
		[]store.Filter{{Path: "email", Op: "==", Value: email}}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return userFromDoc(docs[0]), nil
}

// UpdatePushToken stores the user's push registration token.
func (r *UserRepository) UpdatePushToken(ctx context.Context, uid, pushToken string) error {
	return r.store.Update(ctx, "users", uid, map[string]interface{}{
		"pushToken": pushToken,
	})
}

// CompleteOnboarding writes the onboarding attributes and marks the profile
// as onboarded.
func (r *UserRepository) CompleteOnboarding(ctx context.Context, uid string, req *models.CompleteOnboardingRequest) error {
	return r.store.Update(ctx, "users", uid, map[string]interface{}{
		"phone":               req.Phone,
		"dob":                 req.DOB,
		"gender":              req.Gender,
		"country":             req.Country,
		"city":                req.City,
		"profileImage":        req.ProfileImage,
		"activities":          req.Activities,
		"expertiseLevel":      req.ExpertiseLevel,
		"onboardingCompleted": true,
	})
}

// UpdateLocation stores the user's last known position.
func (r *UserRepository) UpdateLocation(ctx context.Context, uid string, latitude, longitude float64) error {
	return r.store.Update(ctx, "users", uid, map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	})
}

// ListAll scans the whole profile collection. Used by the nearby-player
// search; fine for a small user base, a geo index replaces it at scale.
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.UserProfile, error) {
	docs, err := r.store.Query(ctx, "users", nil, nil, 0)
	if err != nil {
		return nil, err
	}

	users := make([]*models.UserProfile, 0, len(docs))
	for _, doc := range docs {
		users = append(users, userFromDoc(doc))
	}
	return users, nil
}

func userFromDoc(doc *store.Document) *models.UserProfile {
	return &models.UserProfile{
		UID:                 doc.ID,
		Name:                docString(doc, "name"),
		Email:               docString(doc, "email"),
		PasswordHash:        docString(doc, "passwordHash"),
		Phone:               docString(doc, "phone"),
		DOB:                 docString(doc, "dob"),
		Gender:              docString(doc, "gender"),
		Country:             docString(doc, "country"),
		City:                docString(doc, "city"),
		ProfileImage:        docString(doc, "profileImage"),
		Activities:          docStringSlice(doc, "activities"),
		ExpertiseLevel:      docString(doc, "expertiseLevel"),
		OnboardingCompleted: docBool(doc, "onboardingCompleted"),
		Latitude:            docFloatPtr(doc, "latitude"),
		Longitude:           docFloatPtr(doc, "longitude"),
		PushToken:           docString(doc, "pushToken"),
		CreatedAt:           docTime(doc, "createdAt"),
	}
}
