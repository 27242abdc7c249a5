package routes

import (
	"net/http"

	"github.com/fuatnargis/telyna-ai/handlers"
)

// RegisterAuthRoutes registers the identity endpoints
func RegisterAuthRoutes(mux *http.ServeMux, h *handlers.AuthHandlers) {
	mux.HandleFunc("POST /auth/signup", h.SignUp)
	mux.HandleFunc("POST /auth/signin", h.SignIn)
	mux.HandleFunc("POST /auth/signout", h.SignOut)
	mux.HandleFunc("GET /auth/provider", h.Provider)
	mux.HandleFunc("POST /auth/reset-password", h.ResetPassword)
	mux.HandleFunc("POST /auth/update-password", h.UpdatePassword)
	mux.HandleFunc("POST /auth/resend-verification", h.ResendVerification)
	mux.HandleFunc("GET /auth/verified", h.Verified)
}
