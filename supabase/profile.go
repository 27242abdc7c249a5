package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/fuatnargis/telyna-ai/types"
)

// profileRow is the profiles-table document, keyed by the auth user id.
type profileRow struct {
	AuthID            string `json:"auth_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Gender            string `json:"gender"`
	AgeRange          string `json:"age_range"`
	Country           string `json:"country"`
	Role              string `json:"role"`
	Industry          string `json:"industry"`
	IsProfileComplete bool   `json:"is_profile_complete"`
	IsPremium         bool   `json:"is_premium"`
}

func (r profileRow) snapshot() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		Industry:  r.Industry,
		Country:   r.Country,
		AgeRange:  r.AgeRange,
		Gender:    r.Gender,
		IsPremium: r.IsPremium,
	}
}

// GetProfile returns the stored profile snapshot, or nil when the user has
// not completed profile setup yet.
func GetProfile(client *supabase.Client, userID string) (*types.ProfileSnapshot, error) {
	resp, _, err := client.From("profiles").
		Select("*", "", false).
		Eq("auth_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var rows []profileRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].snapshot(), nil
}

// IsProfileComplete reports the completeness flag used by the application
// shell to decide whether profile setup is still needed.
func IsProfileComplete(client *supabase.Client, userID string) (bool, error) {
	resp, _, err := client.From("profiles").
		Select("is_profile_complete", "", false).
		Eq("auth_id", userID).
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var rows []profileRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return false, fmt.Errorf("failed to decode profile: %w", err)
	}
	return len(rows) > 0 && rows[0].IsProfileComplete, nil
}

// CreateProfile inserts the initial profile document for a new account.
// Returns a user-facing error message, empty on success.
func CreateProfile(user types.AuthUser, name string) string {
	row := profileRow{
		AuthID: user.ID,
		Name:   name,
		Email:  user.Email,
	}

	_, _, err := Client.From("profiles").Insert(row, false, "", "", "").Execute()
	if err != nil {
		return mapAuthError("create profile", err)
	}
	return ""
}

// UpdateProfile applies a partial update over the closed field set. Unknown
// fields never reach here; an update carrying no fields is rejected.
func UpdateProfile(client *supabase.Client, userID string, update types.ProfileUpdate) (*types.ProfileSnapshot, error) {
	payload := update.Fields()
	if len(payload) == 0 {
		return nil, fmt.Errorf("no valid fields to update")
	}

	resp, _, err := client.From("profiles").
		Update(payload, "", "").
		Eq("auth_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var rows []profileRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode updated profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no profile found or updated")
	}
	return rows[0].snapshot(), nil
}
