package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/types"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateEmail runs before any identity call; a malformed address never
// reaches the provider.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < config.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", config.MinPasswordLength)
	}
	return nil
}

func validateSignUp(req types.SignUpRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

// validateProfileUpdate checks only the fields present; marking a profile
// complete additionally requires every required field to be non-empty.
func validateProfileUpdate(update types.ProfileUpdate) error {
	if update.Email != nil {
		if err := validateEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if update.IsProfileComplete != nil && *update.IsProfileComplete {
		required := map[string]*string{
			"name":      update.Name,
			"gender":    update.Gender,
			"age_range": update.AgeRange,
			"country":   update.Country,
			"role":      update.Role,
			"industry":  update.Industry,
		}
		for field, value := range required {
			if value == nil || strings.TrimSpace(*value) == "" {
				return fmt.Errorf("field %s is required to complete the profile", field)
			}
		}
	}
	return nil
}
