package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuatnargis/telyna-ai/types"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("user@example.com"))
	assert.Error(t, validateEmail(""))
	assert.Error(t, validateEmail("   "))
	assert.Error(t, validateEmail("not-an-email"))
	assert.Error(t, validateEmail("user@nodot"))
	assert.Error(t, validateEmail("user @example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("secret1"))
	assert.Error(t, validatePassword(""))
	assert.Error(t, validatePassword("12345"))
}

func TestValidateSignUp(t *testing.T) {
	valid := types.SignUpRequest{Name: "Ayşe", Email: "ayse@example.com", Password: "secret1"}
	assert.NoError(t, validateSignUp(valid))

	noName := valid
	noName.Name = "  "
	assert.Error(t, validateSignUp(noName))

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, validateSignUp(badEmail))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, validateSignUp(shortPassword))
}

func TestValidateProfileUpdate(t *testing.T) {
	str := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	assert.NoError(t, validateProfileUpdate(types.ProfileUpdate{Name: str("Kenji")}))
	assert.Error(t, validateProfileUpdate(types.ProfileUpdate{Name: str("  ")}))
	assert.Error(t, validateProfileUpdate(types.ProfileUpdate{Email: str("nope")}))

	// Completing the profile requires every required field.
	incomplete := types.ProfileUpdate{
		IsProfileComplete: boolPtr(true),
		Name:              str("Kenji"),
		Gender:            str("Male"),
		AgeRange:          str("25-34"),
		Country:           str("Japan"),
		Role:              str("Designer"),
	}
	assert.Error(t, validateProfileUpdate(incomplete), "industry missing")

	complete := incomplete
	complete.Industry = str("Media")
	assert.NoError(t, validateProfileUpdate(complete))

	// Explicitly marking incomplete needs no other fields.
	assert.NoError(t, validateProfileUpdate(types.ProfileUpdate{IsProfileComplete: boolPtr(false)}))
}
