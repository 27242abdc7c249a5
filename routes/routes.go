package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(
	mux *http.ServeMux,
	chat *handlers.ChatHandlers,
	conversations *handlers.ConversationHandlers,
	auth *handlers.AuthHandlers,
	preferences *handlers.PreferencesHandlers,
) {
	RegisterChatRoutes(mux, chat)
	RegisterConversationRoutes(mux, conversations)
	RegisterAuthRoutes(mux, auth)
	RegisterProfileRoutes(mux)
	RegisterPreferenceRoutes(mux, preferences)
}
