package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/supabase"
	"github.com/fuatnargis/telyna-ai/types"
)

func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	profile, err := supabase.GetProfile(client, userID)
	if err != nil {
		config.Logger.Error("Failed to fetch profile:", err)
		writeError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	// Profile is nil when setup has not been completed; that is not an error.
	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		Profile: profile,
	})
}

// ProfileCompleteHandler reports whether profile setup is finished, for the
// client to decide whether to show the setup flow.
func ProfileCompleteHandler(w http.ResponseWriter, r *http.Request) {
	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	complete, err := supabase.IsProfileComplete(client, userID)
	if err != nil {
		config.Logger.Error("Failed to check profile completeness:", err)
		writeError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"complete": complete,
	})
}

// UpdateProfileHandler applies a partial update over the closed profile
// field set. Unknown fields are rejected at decode time.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var update types.ProfileUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(update.Fields()) == 0 {
		writeError(w, "No valid fields to update", http.StatusBadRequest)
		return
	}
	if err := validateProfileUpdate(update); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := supabase.UpdateProfile(client, userID, update)
	if err != nil {
		config.Logger.Error("Failed to update profile:", err)
		writeError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		Profile: profile,
	})
}
