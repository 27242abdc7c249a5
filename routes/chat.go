package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
	"github.com/fuatnargis/telyna-ai/middleware"
)

// RegisterChatRoutes registers the conversational endpoints
func RegisterChatRoutes(mux *http.ServeMux, h *handlers.ChatHandlers) {
	mux.Handle("POST /chat", middleware.AuthMiddleware(http.HandlerFunc(h.Chat)))
	mux.Handle("POST /chat/welcome", middleware.AuthMiddleware(http.HandlerFunc(h.Welcome)))
}
