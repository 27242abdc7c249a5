package llm

import (
	"errors"
	"strings"
)

// Sentinel errors for the generative-service failure taxonomy. Callers map
// these to user-facing messages; nothing here is fatal to the application.
var (
	ErrNotConfigured = errors.New("generative service is not configured")
	ErrInvalidKey    = errors.New("generative service rejected the API key")
	ErrQuota         = errors.New("generative service quota exceeded")
	ErrRateLimited   = errors.New("generative service rate limited")
	ErrNetwork       = errors.New("network error reaching generative service")
)

// Category buckets a generative failure for user-facing handling.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNotConfigured
	CategoryInvalidKey
	CategoryQuota
	CategoryRateLimited
	CategoryNetwork
)

// Categorize maps an error from a generative call to its failure category.
// Sentinels win; otherwise known substrings of the underlying message are
// matched, quota before rate limit because quota messages often mention 429
// as well.
func Categorize(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	switch {
	case errors.Is(err, ErrNotConfigured):
		return CategoryNotConfigured
	case errors.Is(err, ErrInvalidKey):
		return CategoryInvalidKey
	case errors.Is(err, ErrQuota):
		return CategoryQuota
	case errors.Is(err, ErrRateLimited):
		return CategoryRateLimited
	case errors.Is(err, ErrNetwork):
		return CategoryNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key_invalid") || strings.Contains(msg, "api key not valid"):
		return CategoryInvalidKey
	case strings.Contains(msg, "quota"):
		return CategoryQuota
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource_exhausted"):
		return CategoryRateLimited
	case strings.Contains(msg, "connection") || strings.Contains(msg, "network") ||
		strings.Contains(msg, "no such host") || strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded"):
		return CategoryNetwork
	}

	return CategoryUnknown
}
