package supabase

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	gotruetypes "github.com/supabase-community/gotrue-go/types"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/types"
)

// AuthResult is the uniform shape every identity operation resolves to: a
// value where relevant, plus a user-facing error string or nil. Provider
// error codes never escape this package.
type AuthResult struct {
	User         *types.AuthUser
	AccessToken  string
	RefreshToken string
	Error        string
}

// SignUp registers a new account and creates its profile document. A
// verification email is sent by the provider as part of signup.
func SignUp(email, password, name string) AuthResult {
	resp, err := Client.Auth.Signup(gotruetypes.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"name": name,
		},
	})
	if err != nil {
		config.Logger.Error("Sign up error:", err)
		return AuthResult{Error: mapAuthError("sign up", err)}
	}

	user := authUserFromGotrue(resp.User)
	user.Name = name

	if msg := CreateProfile(user, name); msg != "" {
		return AuthResult{Error: msg}
	}

	return AuthResult{
		User:         &user,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

// SignIn exchanges email/password credentials for a session.
func SignIn(email, password string) AuthResult {
	resp, err := Client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		config.Logger.Error("Sign in error:", err)
		return AuthResult{Error: mapAuthError("sign in", err)}
	}

	user := authUserFromGotrue(resp.User)
	return AuthResult{
		User:         &user,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

// ProviderSignInURL returns the external provider's authorization URL; the
// client completes the flow there and comes back with a session.
func ProviderSignInURL(provider string) (string, string) {
	if provider == "" {
		provider = "google"
	}
	resp, err := Client.Auth.Authorize(gotruetypes.AuthorizeRequest{
		Provider: gotruetypes.Provider(provider),
	})
	if err != nil {
		config.Logger.Error("Provider sign in error:", err)
		return "", mapAuthError("provider sign in", err)
	}
	return resp.AuthorizationURL, ""
}

// SignOut revokes the caller's session.
func SignOut(accessToken string) string {
	if err := Client.Auth.WithToken(accessToken).Logout(); err != nil {
		config.Logger.Error("Sign out error:", err)
		return mapAuthError("sign out", err)
	}
	return ""
}

// SendPasswordReset emails a recovery link.
func SendPasswordReset(email string) string {
	if err := Client.Auth.Recover(gotruetypes.RecoverRequest{Email: email}); err != nil {
		config.Logger.Error("Reset password error:", err)
		return mapAuthError("reset password", err)
	}
	return ""
}

// UpdatePassword sets a new password for the signed-in user.
func UpdatePassword(accessToken, newPassword string) string {
	_, err := Client.Auth.WithToken(accessToken).UpdateUser(gotruetypes.UpdateUserRequest{
		Password: &newPassword,
	})
	if err != nil {
		config.Logger.Error("Update password error:", err)
		return mapAuthError("update password", err)
	}
	return ""
}

// CheckEmailVerified reports whether the signed-in user confirmed their
// email address.
func CheckEmailVerified(accessToken string) (bool, string) {
	resp, err := Client.Auth.WithToken(accessToken).GetUser()
	if err != nil {
		config.Logger.Error("Get user error:", err)
		return false, mapAuthError("check verification", err)
	}
	return resp.EmailConfirmedAt != nil, ""
}

// ResendVerification re-sends the signup confirmation email. gotrue-go has
// no wrapper for the resend endpoint, so this posts to it directly.
func ResendVerification(email string) string {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	body, err := json.Marshal(map[string]string{
		"type":  "signup",
		"email": email,
	})
	if err != nil {
		return "Could not resend the verification email"
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+"/auth/v1/resend", bytes.NewReader(body))
	if err != nil {
		return "Could not resend the verification email"
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		config.Logger.Error("Resend verification error:", err)
		return "Could not resend the verification email. Please check your connection"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		config.Logger.Error("Resend verification returned status", resp.StatusCode)
		return "Could not resend the verification email"
	}
	return ""
}

func authUserFromGotrue(u gotruetypes.User) types.AuthUser {
	provider := "email"
	if v, ok := u.AppMetadata["provider"].(string); ok && v != "" {
		provider = v
	}

	name := ""
	if v, ok := u.UserMetadata["name"].(string); ok {
		name = v
	}
	avatar := ""
	if v, ok := u.UserMetadata["avatar_url"].(string); ok {
		avatar = v
	}

	return types.AuthUser{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          name,
		AvatarURL:     avatar,
		Provider:      provider,
		EmailVerified: u.EmailConfirmedAt != nil,
	}
}
