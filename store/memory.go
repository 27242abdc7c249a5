package store

import (
	"context"
	"sync"

	"github.com/fuatnargis/telyna-ai/types"
)

// Memory is the in-process TranscriptStore, used in tests and in
// single-client mode when no Redis is configured.
type Memory struct {
	mu            sync.Mutex
	values        map[string]string
	conversations map[string][]types.Conversation
}

func NewMemory() *Memory {
	return &Memory{
		values:        make(map[string]string),
		conversations: make(map[string][]types.Conversation),
	}
}

func (m *Memory) Get(_ context.Context, key, defaultValue string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) SaveConversation(_ context.Context, userID string, conv types.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[userID] = upsert(m.conversations[userID], conv)
	return nil
}

func (m *Memory) GetConversation(_ context.Context, userID, conversationID string) (*types.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.conversations[userID] {
		if c.ID == conversationID {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListConversations(_ context.Context, userID string) ([]types.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.conversations[userID]
	out := make([]types.Conversation, len(list))
	copy(out, list)
	return out, nil
}

func (m *Memory) DeleteConversation(_ context.Context, userID, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[userID] = remove(m.conversations[userID], conversationID)
	return nil
}
