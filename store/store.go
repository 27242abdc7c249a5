// Package store is the local transcript/preference store: keyed persistence
// scoped to the running client. It holds the seen-onboarding flag and the
// list of past conversations, nothing else.
package store

import (
	"context"

	"github.com/fuatnargis/telyna-ai/types"
)

// TranscriptStore is the keyed persistence contract. Writes are
// last-writer-wins per conversation id; updates are serialized by the
// single-threaded event model of the session controller, so no locking is
// required of callers.
type TranscriptStore interface {
	// Get returns the stored value for key, or defaultValue when absent.
	Get(ctx context.Context, key, defaultValue string) (string, error)
	Set(ctx context.Context, key, value string) error

	// SaveConversation upserts by conversation id. New conversations are
	// inserted first; existing ones are replaced in place, preserving the
	// order of the rest of the list.
	SaveConversation(ctx context.Context, userID string, conv types.Conversation) error
	GetConversation(ctx context.Context, userID, conversationID string) (*types.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]types.Conversation, error)
	// DeleteConversation removes exactly the named entry and leaves all
	// others' order and content unchanged. Removing a missing id is a no-op.
	DeleteConversation(ctx context.Context, userID, conversationID string) error
}

// upsert replaces the entry with conv's id in place, or inserts conv first.
func upsert(list []types.Conversation, conv types.Conversation) []types.Conversation {
	for i := range list {
		if list[i].ID == conv.ID {
			list[i] = conv
			return list
		}
	}
	return append([]types.Conversation{conv}, list...)
}

func remove(list []types.Conversation, conversationID string) []types.Conversation {
	out := list[:0]
	for _, c := range list {
		if c.ID != conversationID {
			out = append(out, c)
		}
	}
	return out
}
