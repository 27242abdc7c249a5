package llm

import (
	"github.com/fuatnargis/telyna-ai/types"
)

// Roles the generative API understands in this integration. There is no
// dedicated system-role slot; the system prompt travels as a user entry.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Content is one entry of the ordered payload sent to the generative API.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// FrameConversation assembles the ordered message sequence for one
// generative call: the system prompt under the user role, every prior
// message role-for-role, then the new user text. Given N prior messages the
// result has exactly N+2 entries, in original order.
//
// No history capping is applied: every prior message is replayed every
// turn, so payload size grows without bound over a long conversation.
func FrameConversation(systemPrompt string, prior []types.Message, newUserText string) []Content {
	contents := make([]Content, 0, len(prior)+2)

	contents = append(contents, Content{
		Role:  RoleUser,
		Parts: []Part{{Text: systemPrompt}},
	})

	for _, msg := range prior {
		role := RoleModel
		if msg.IsUser {
			role = RoleUser
		}
		contents = append(contents, Content{
			Role:  role,
			Parts: []Part{{Text: msg.Content}},
		})
	}

	contents = append(contents, Content{
		Role:  RoleUser,
		Parts: []Part{{Text: newUserText}},
	})

	return contents
}
