package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fuatnargis/telyna-ai/supabase"
	"github.com/fuatnargis/telyna-ai/types"
)

// AuthHandlers serves the identity endpoints. Every provider error arrives
// here already mapped to a user-facing message; handlers only choose the
// status code.
type AuthHandlers struct {
	Notifier *supabase.AuthNotifier
}

func NewAuthHandlers(notifier *supabase.AuthNotifier) *AuthHandlers {
	return &AuthHandlers{Notifier: notifier}
}

func (h *AuthHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req types.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateSignUp(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := supabase.SignUp(req.Email, req.Password, req.Name)
	if res.Error != "" {
		writeError(w, res.Error, http.StatusBadRequest)
		return
	}

	if res.AccessToken != "" {
		h.Notifier.Notify(supabase.EventSignedIn, res.User)
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Success:      true,
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

func (h *AuthHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req types.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateEmail(req.Email); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		writeError(w, "password is required", http.StatusBadRequest)
		return
	}

	res := supabase.SignIn(req.Email, req.Password)
	if res.Error != "" {
		writeError(w, res.Error, http.StatusUnauthorized)
		return
	}

	h.Notifier.Notify(supabase.EventSignedIn, res.User)

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Success:      true,
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	token, err := supabase.BearerToken(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	if msg := supabase.SignOut(token); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	h.Notifier.Notify(supabase.EventSignedOut, nil)

	writeJSON(w, http.StatusOK, types.AuthResponse{Success: true})
}

// Provider returns the external provider's authorization URL for the client
// to complete the sign-in flow.
func (h *AuthHandlers) Provider(w http.ResponseWriter, r *http.Request) {
	url, msg := supabase.ProviderSignInURL(r.URL.Query().Get("provider"))
	if msg != "" {
		writeError(w, msg, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     url,
	})
}

func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req types.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateEmail(req.Email); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if msg := supabase.SendPasswordReset(req.Email); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{Success: true})
}

func (h *AuthHandlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	token, err := supabase.BearerToken(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	var req types.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if msg := supabase.UpdatePassword(token, req.NewPassword); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{Success: true})
}

func (h *AuthHandlers) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req types.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateEmail(req.Email); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if msg := supabase.ResendVerification(req.Email); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{Success: true})
}

func (h *AuthHandlers) Verified(w http.ResponseWriter, r *http.Request) {
	token, err := supabase.BearerToken(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	verified, msg := supabase.CheckEmailVerified(token)
	if msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"verified": verified,
	})
}
