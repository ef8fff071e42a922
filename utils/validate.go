package utils

import (
	"errors"
	"fmt"
	"strings"

	"nutritrack/models"
)

var ErrInvalidProfile = errors.New("invalid profile")

// ValidateProfile applies the same checks the onboarding wizard gates on,
// plus enum checks. The goal engine itself never rejects input.
func ValidateProfile(p models.UserProfile) error {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if p.Age <= 0 || p.Age >= 120 {
		problems = append(problems, "age must be between 1 and 119")
	}
	if p.Height <= 0 || p.Weight <= 0 {
		problems = append(problems, "height and weight must be positive")
	}
	if p.Sex != models.Male && p.Sex != models.Female {
		problems = append(problems, fmt.Sprintf("unknown sex %q", p.Sex))
	}
	if !IsKnownActivity(p.Activity) {
		problems = append(problems, fmt.Sprintf("unknown activity %q", p.Activity))
	}
	if !IsKnownGoal(p.Goal) {
		problems = append(problems, fmt.Sprintf("unknown goal %q", p.Goal))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(problems, "; "))
	}
	return nil
}
