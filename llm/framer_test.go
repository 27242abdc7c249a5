package llm

import (
	"testing"

	"github.com/fuatnargis/telyna-ai/types"
)

func TestFrameConversationEmptyHistory(t *testing.T) {
	contents := FrameConversation("system prompt", nil, "first message")

	if len(contents) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(contents))
	}
	if contents[0].Role != RoleUser || contents[0].Parts[0].Text != "system prompt" {
		t.Errorf("entry 0 = %+v, want system prompt under user role", contents[0])
	}
	if contents[1].Role != RoleUser || contents[1].Parts[0].Text != "first message" {
		t.Errorf("entry 1 = %+v, want new user text", contents[1])
	}
}

func TestFrameConversationReplaysHistoryInOrder(t *testing.T) {
	prior := []types.Message{
		{Content: "welcome", IsUser: false},
		{Content: "question", IsUser: true},
		{Content: "answer", IsUser: false},
	}

	contents := FrameConversation("sys", prior, "followup")

	if len(contents) != len(prior)+2 {
		t.Fatalf("expected %d entries, got %d", len(prior)+2, len(contents))
	}

	wantRoles := []string{RoleUser, RoleModel, RoleUser, RoleModel, RoleUser}
	wantTexts := []string{"sys", "welcome", "question", "answer", "followup"}
	for i := range contents {
		if contents[i].Role != wantRoles[i] {
			t.Errorf("entry %d role = %q, want %q", i, contents[i].Role, wantRoles[i])
		}
		if contents[i].Parts[0].Text != wantTexts[i] {
			t.Errorf("entry %d text = %q, want %q", i, contents[i].Parts[0].Text, wantTexts[i])
		}
	}
}
