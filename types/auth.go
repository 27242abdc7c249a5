package types

// AuthUser is the identity-provider view of a signed-in user.
type AuthUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Provider      string `json:"provider,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type AuthResponse struct {
	Success      bool      `json:"success"`
	User         *AuthUser `json:"user,omitempty"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ErrorMessage string    `json:"error,omitempty"`
}

// ProfileUpdate is the closed set of updatable profile fields. Pointer
// fields distinguish "not provided" from an explicit empty value; unknown
// fields are rejected at decode time rather than passed through.
type ProfileUpdate struct {
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	AgeRange          *string `json:"age_range,omitempty"`
	Country           *string `json:"country,omitempty"`
	Role              *string `json:"role,omitempty"`
	Industry          *string `json:"industry,omitempty"`
	IsProfileComplete *bool   `json:"is_profile_complete,omitempty"`
}

// Fields returns the update as a column→value map containing only the
// fields that were provided.
func (u ProfileUpdate) Fields() map[string]interface{} {
	payload := map[string]interface{}{}
	if u.Name != nil {
		payload["name"] = *u.Name
	}
	if u.Email != nil {
		payload["email"] = *u.Email
	}
	if u.Gender != nil {
		payload["gender"] = *u.Gender
	}
	if u.AgeRange != nil {
		payload["age_range"] = *u.AgeRange
	}
	if u.Country != nil {
		payload["country"] = *u.Country
	}
	if u.Role != nil {
		payload["role"] = *u.Role
	}
	if u.Industry != nil {
		payload["industry"] = *u.Industry
	}
	if u.IsProfileComplete != nil {
		payload["is_profile_complete"] = *u.IsProfileComplete
	}
	return payload
}

type ProfileResponse struct {
	Success      bool             `json:"success"`
	Profile      *ProfileSnapshot `json:"profile,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
}
