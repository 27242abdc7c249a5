package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
	"github.com/fuatnargis/telyna-ai/middleware"
)

// RegisterPreferenceRoutes registers the per-user preference endpoints
func RegisterPreferenceRoutes(mux *http.ServeMux, h *handlers.PreferencesHandlers) {
	mux.Handle("GET /preferences", middleware.AuthMiddleware(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /preferences", middleware.AuthMiddleware(http.HandlerFunc(h.Update)))
}
