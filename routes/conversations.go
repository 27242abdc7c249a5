package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
	"github.com/fuatnargis/telyna-ai/middleware"
)

// RegisterConversationRoutes registers the past-conversations endpoints
func RegisterConversationRoutes(mux *http.ServeMux, h *handlers.ConversationHandlers) {
	mux.Handle("GET /conversations", middleware.AuthMiddleware(http.HandlerFunc(h.List)))
	mux.Handle("GET /conversation", middleware.AuthMiddleware(http.HandlerFunc(h.Get)))
	mux.Handle("DELETE /conversation", middleware.AuthMiddleware(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /conversation/clear", middleware.AuthMiddleware(http.HandlerFunc(h.Clear)))
}
