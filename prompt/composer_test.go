package prompt

import (
	"strings"
	"testing"

	"github.com/fuatnargis/telyna-ai/langdetect"
	"github.com/fuatnargis/telyna-ai/types"
)

func testContext() types.ChatContext {
	return types.ChatContext{
		Country: "Japan",
		Purpose: types.PurposeBusinessMeeting,
	}
}

func testProfile() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		Name:     "Ayşe",
		Email:    "ayse@example.com",
		Role:     "Engineer",
		Industry: "Software",
		Country:  "Turkey",
		AgeRange: "25-34",
		Gender:   "Female",
	}
}

func TestComposeSystemPromptBasics(t *testing.T) {
	out := ComposeSystemPrompt(testContext(), langdetect.English)

	for _, want := range []string{
		"You are Telyna AI, a specialized cultural assistant for Japan focused on Business Meeting.",
		"CRITICAL LANGUAGE RULE:",
		"- Target Country: Japan",
		"- Purpose: Business Meeting",
		"- User Language: English",
		"You MUST respond ONLY in English language",
		"Your expertise is Japan culture for Business Meeting",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(out, "USER PROFILE:") {
		t.Error("prompt without profile must not contain a profile block")
	}
}

func TestComposeSystemPromptLanguageDirective(t *testing.T) {
	out := ComposeSystemPrompt(testContext(), langdetect.Turkish)

	for _, want := range []string{
		"- The user is communicating in Turkish",
		"You MUST respond ONLY in Turkish language",
		"ABSOLUTE RULE: Use ONLY Turkish language in your entire response",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeSystemPromptProfileBlock(t *testing.T) {
	ctx := testContext()
	ctx.UserProfile = testProfile()

	out := ComposeSystemPrompt(ctx, langdetect.English)

	for _, want := range []string{
		"USER PROFILE:",
		"- Name: Ayşe",
		"- Role: Engineer",
		"- Subscription: Free Member",
		"Provide basic level information",
		"- Address the user as Ayşe when appropriate",
		"- Make comparisons between Turkey and Japan when helpful",
		"- Provide helpful advice",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeSystemPromptPremiumProfile(t *testing.T) {
	ctx := testContext()
	profile := testProfile()
	profile.IsPremium = true
	ctx.UserProfile = profile

	out := ComposeSystemPrompt(ctx, langdetect.English)

	for _, want := range []string{
		"- Subscription: Premium Member",
		"Provide detailed and comprehensive information",
		"- Provide detailed, comprehensive advice as a premium member",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeSystemPromptDeterministic(t *testing.T) {
	ctx := testContext()
	ctx.UserProfile = testProfile()

	a := ComposeSystemPrompt(ctx, langdetect.Spanish)
	b := ComposeSystemPrompt(ctx, langdetect.Spanish)
	if a != b {
		t.Error("identical inputs must produce identical prompts")
	}
}
