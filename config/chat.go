package config

// Generation parameters sent with every generative call. Fixed constants,
// not user-configurable.
const (
	GenTemperature     = 0.4
	GenTopK            = 40
	GenTopP            = 0.95
	GenMaxOutputTokens = 300
)

// Minimum plausible length for a generative API key. Anything shorter is
// treated as a configuration error at init time.
const MinAPIKeyLength = 30

// MinPasswordLength is enforced before any identity call is attempted.
const MinPasswordLength = 6

// Store keys for client-scoped persisted state.
const (
	KeySeenOnboarding      = "seenOnboarding"
	KeyPastChatsPrefix     = "pastChats:"
	KeyPreferencesLanguage = "preferredLanguage"
)
