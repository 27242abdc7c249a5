package supabase

import (
	"fmt"
	"strings"
)

// mapAuthError converts a provider error into a specific user-facing
// message where the code is recognized, or a generic per-operation message
// otherwise. Provider-specific codes are matched here and nowhere else.
func mapAuthError(op string, err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "user not found") || strings.Contains(msg, "user_not_found"):
		return "No account was found with this email address"
	case strings.Contains(msg, "invalid login credentials") || strings.Contains(msg, "invalid_credentials") ||
		strings.Contains(msg, "wrong password"):
		return "Email address or password is incorrect"
	case strings.Contains(msg, "already registered") || strings.Contains(msg, "already been registered") ||
		strings.Contains(msg, "email_exists"):
		return "This email address is already in use"
	case strings.Contains(msg, "weak password") || strings.Contains(msg, "weak_password") ||
		strings.Contains(msg, "at least 6 characters"):
		return "Password is too weak. It must be at least 6 characters"
	case strings.Contains(msg, "invalid email") || strings.Contains(msg, "validation_failed") ||
		strings.Contains(msg, "invalid format"):
		return "Invalid email address"
	case strings.Contains(msg, "too many requests") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "over_request_rate_limit"):
		return "Too many attempts. Please try again later"
	case strings.Contains(msg, "email not confirmed") || strings.Contains(msg, "email_not_confirmed"):
		return "Please verify your email address before signing in"
	case strings.Contains(msg, "session") && strings.Contains(msg, "not found"):
		return "No active session was found"
	}

	return fmt.Sprintf("Could not %s. Please try again", op)
}
