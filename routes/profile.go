package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
	"github.com/fuatnargis/telyna-ai/middleware"
)

// RegisterProfileRoutes registers the user profile endpoints
func RegisterProfileRoutes(mux *http.ServeMux) {
	mux.Handle("GET /profile", middleware.AuthMiddleware(http.HandlerFunc(handlers.GetProfileHandler)))
	mux.Handle("GET /profile/complete", middleware.AuthMiddleware(http.HandlerFunc(handlers.ProfileCompleteHandler)))
	mux.Handle("PATCH /profile", middleware.AuthMiddleware(http.HandlerFunc(handlers.UpdateProfileHandler)))
}
