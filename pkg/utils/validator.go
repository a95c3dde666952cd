package utils

import (
	"errors"
	"regexp"
	"strings"
)

var nameRegex = regexp.MustCompile(`^[\p{L}0-9 '._-]{2,40}$`)

var expertiseLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"professional": true,
}

// ValidateName validates the display name format
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 40 {
		return errors.New("name must be between 2 and 40 characters")
	}
	if !nameRegex.MatchString(name) {
		return errors.New("name contains invalid characters")
	}
	return nil
}

// ValidatePassword validates password format
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// ValidateExpertiseLevel validates the self-declared skill level
func ValidateExpertiseLevel(level string) error {
	if !expertiseLevels[strings.ToLower(level)] {
		return errors.New("expertise level must be one of beginner, intermediate, advanced, professional")
	}
	return nil
}
