package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuatnargis/telyna-ai/types"
)

func conv(id string) types.Conversation {
	return types.Conversation{ID: id, Country: "Japan", Purpose: types.PurposeTourism}
}

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	val, err := m.Get(ctx, "seenOnboarding", "false")
	require.NoError(t, err)
	assert.Equal(t, "false", val, "missing key yields the default")

	require.NoError(t, m.Set(ctx, "seenOnboarding", "true"))

	val, err = m.Get(ctx, "seenOnboarding", "false")
	require.NoError(t, err)
	assert.Equal(t, "true", val)
}

func TestMemorySaveConversationInsertsNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveConversation(ctx, "u1", conv("a")))
	require.NoError(t, m.SaveConversation(ctx, "u1", conv("b")))

	list, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestMemorySaveConversationUpdatesInPlace(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveConversation(ctx, "u1", conv("a")))
	require.NoError(t, m.SaveConversation(ctx, "u1", conv("b")))

	updated := conv("a")
	updated.Messages = []types.Message{{ID: "1", Content: "hi"}}
	require.NoError(t, m.SaveConversation(ctx, "u1", updated))

	list, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "updating must not reorder")
	assert.Equal(t, "a", list[1].ID)
	assert.Len(t, list[1].Messages, 1)
}

func TestMemoryGetConversation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveConversation(ctx, "u1", conv("a")))

	found, err := m.GetConversation(ctx, "u1", "a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a", found.ID)

	missing, err := m.GetConversation(ctx, "u1", "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	otherUser, err := m.GetConversation(ctx, "u2", "a")
	require.NoError(t, err)
	assert.Nil(t, otherUser, "conversations are scoped per user")
}

func TestMemoryDeleteConversation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveConversation(ctx, "u1", conv("a")))
	require.NoError(t, m.SaveConversation(ctx, "u1", conv("b")))
	require.NoError(t, m.SaveConversation(ctx, "u1", conv("c")))

	require.NoError(t, m.DeleteConversation(ctx, "u1", "b"))

	list, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)

	// Deleting a missing id is a no-op.
	require.NoError(t, m.DeleteConversation(ctx, "u1", "nope"))
	list, err = m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
