package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/supabase"
)

// PreferencesHandlers serves the small per-user preference surface backed by
// the keyed value store: the seen-onboarding flag and the preferred language.
type PreferencesHandlers struct {
	Store store.TranscriptStore
}

func NewPreferencesHandlers(transcripts store.TranscriptStore) *PreferencesHandlers {
	return &PreferencesHandlers{Store: transcripts}
}

type preferencesPayload struct {
	SeenOnboarding    *bool   `json:"seen_onboarding,omitempty"`
	PreferredLanguage *string `json:"preferred_language,omitempty"`
}

func (h *PreferencesHandlers) Get(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	seen, err := h.Store.Get(r.Context(), scopedKey(config.KeySeenOnboarding, userID), "false")
	if err != nil {
		config.Logger.Error("Failed to read preferences:", err)
		writeError(w, "Failed to fetch preferences", http.StatusInternalServerError)
		return
	}
	lang, err := h.Store.Get(r.Context(), scopedKey(config.KeyPreferencesLanguage, userID), "")
	if err != nil {
		config.Logger.Error("Failed to read preferences:", err)
		writeError(w, "Failed to fetch preferences", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"seen_onboarding":    seen == "true",
		"preferred_language": lang,
	})
}

func (h *PreferencesHandlers) Update(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var payload preferencesPayload
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.SeenOnboarding == nil && payload.PreferredLanguage == nil {
		writeError(w, "No preferences to update", http.StatusBadRequest)
		return
	}

	if payload.SeenOnboarding != nil {
		value := strconv.FormatBool(*payload.SeenOnboarding)
		if err := h.Store.Set(r.Context(), scopedKey(config.KeySeenOnboarding, userID), value); err != nil {
			config.Logger.Error("Failed to save preferences:", err)
			writeError(w, "Failed to save preferences", http.StatusInternalServerError)
			return
		}
	}
	if payload.PreferredLanguage != nil {
		if err := h.Store.Set(r.Context(), scopedKey(config.KeyPreferencesLanguage, userID), *payload.PreferredLanguage); err != nil {
			config.Logger.Error("Failed to save preferences:", err)
			writeError(w, "Failed to save preferences", http.StatusInternalServerError)
			return
		}
	}

	h.Get(w, r)
}

func scopedKey(key, userID string) string {
	return key + ":" + userID
}
