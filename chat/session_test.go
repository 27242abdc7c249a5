package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuatnargis/telyna-ai/langdetect"
	"github.com/fuatnargis/telyna-ai/llm"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/types"
)

type fakeGenerator struct {
	reply string
	err   error
	calls [][]llm.Content
}

func (f *fakeGenerator) GenerateContent(_ context.Context, contents []llm.Content) (string, error) {
	f.calls = append(f.calls, contents)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestConversation() types.Conversation {
	return types.Conversation{
		ID:      "11111111-1111-1111-1111-111111111111",
		Country: "Japan",
		Purpose: types.PurposeBusinessMeeting,
	}
}

func TestStartGeneratesWelcome(t *testing.T) {
	transcripts := store.NewMemory()
	c := NewController("user-1", newTestConversation(), nil, &fakeGenerator{}, transcripts, nil)

	welcome := c.Start(context.Background(), langdetect.English)

	require.NotEmpty(t, welcome.Content)
	assert.False(t, welcome.IsUser)
	assert.Contains(t, welcome.Content, "Japan")
	assert.Equal(t, StateIdle, c.State())

	// The welcome is persisted immediately.
	saved, err := transcripts.GetConversation(context.Background(), "user-1", newTestConversation().ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Len(t, saved.Messages, 1)
	assert.Equal(t, welcome.Content, saved.Messages[0].Content)
}

func TestStartIsIdempotent(t *testing.T) {
	c := NewController("user-1", newTestConversation(), nil, &fakeGenerator{}, store.NewMemory(), nil)

	first := c.Start(context.Background(), langdetect.English)
	second := c.Start(context.Background(), langdetect.English)

	require.NotEmpty(t, first.Content)
	assert.Empty(t, second.Content)
	assert.Len(t, c.Conversation().Messages, 1)
}

func TestStartOnExistingConversationOnlySettlesState(t *testing.T) {
	conv := newTestConversation()
	conv.Messages = []types.Message{{ID: "1", Content: "hi", IsUser: true}}

	c := NewController("user-1", conv, nil, &fakeGenerator{}, store.NewMemory(), nil)
	assert.Equal(t, StateIdle, c.State())

	welcome := c.Start(context.Background(), langdetect.English)
	assert.Empty(t, welcome.Content)
	assert.Len(t, c.Conversation().Messages, 1)
}

func TestSendRunsFullTurn(t *testing.T) {
	gen := &fakeGenerator{reply: "Bowing is customary."}
	transcripts := store.NewMemory()
	c := NewController("user-1", newTestConversation(), nil, gen, transcripts, nil)
	c.Start(context.Background(), langdetect.English)

	result, err := c.Send(context.Background(), "How should I greet my hosts?")
	require.NoError(t, err)

	assert.True(t, result.UserMessage.IsUser)
	assert.Equal(t, "How should I greet my hosts?", result.UserMessage.Content)
	assert.False(t, result.AssistantMessage.IsUser)
	assert.Equal(t, "Bowing is customary.", result.AssistantMessage.Content)
	assert.Equal(t, langdetect.English, result.Language)
	assert.Equal(t, StateIdle, c.State())

	// welcome + user + assistant
	require.Len(t, c.Conversation().Messages, 3)

	// Framed payload: system prompt, the welcome, the new user text.
	require.Len(t, gen.calls, 1)
	require.Len(t, gen.calls[0], 3)
	assert.Contains(t, gen.calls[0][0].Parts[0].Text, "You are Telyna AI")
	assert.Equal(t, llm.RoleModel, gen.calls[0][1].Role)
	assert.Equal(t, "How should I greet my hosts?", gen.calls[0][2].Parts[0].Text)

	saved, err := transcripts.GetConversation(context.Background(), "user-1", newTestConversation().ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.Messages, 3)
}

func TestSendDetectsLanguagePerMessage(t *testing.T) {
	gen := &fakeGenerator{reply: "Elbette!"}
	c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), nil)
	c.Start(context.Background(), langdetect.English)

	result, err := c.Send(context.Background(), "Merhaba, nasılsınız?")
	require.NoError(t, err)

	assert.Equal(t, langdetect.Turkish, result.Language)
	assert.Contains(t, gen.calls[0][0].Parts[0].Text, "You MUST respond ONLY in Turkish language")
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	c := NewController("user-1", newTestConversation(), nil, &fakeGenerator{}, store.NewMemory(), nil)
	c.Start(context.Background(), langdetect.English)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := c.Send(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Len(t, c.Conversation().Messages, 1)
}

// blockingGenerator holds the generative call open until released, to pin
// down what happens while a send is in flight.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) GenerateContent(_ context.Context, _ []llm.Content) (string, error) {
	g.started <- struct{}{}
	<-g.release
	return "done", nil
}

func TestSendWhileSendingIsRejected(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), nil)
	c.Start(context.Background(), langdetect.English)

	errs := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), "first question")
		errs <- err
	}()

	<-gen.started
	assert.Equal(t, StateSending, c.State())

	// The second send is dropped, not queued.
	_, err := c.Send(context.Background(), "second question")
	assert.ErrorIs(t, err, ErrBusy)

	close(gen.release)
	require.NoError(t, <-errs)

	msgs := c.Conversation().Messages
	require.Len(t, msgs, 3, "welcome + first question + reply, nothing from the rejected send")
	assert.Equal(t, "first question", msgs[1].Content)
	assert.Equal(t, "done", msgs[2].Content)
	assert.Equal(t, StateIdle, c.State())
}

func TestStartUsesGivenLanguage(t *testing.T) {
	c := NewController("user-1", newTestConversation(), nil, &fakeGenerator{}, store.NewMemory(), nil)

	welcome := c.Start(context.Background(), langdetect.Turkish)
	assert.Contains(t, welcome.Content, "Merhaba")
}

func TestSendAutoStartWelcomesInDetectedLanguage(t *testing.T) {
	gen := &fakeGenerator{reply: "Tabii!"}
	c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), nil)

	_, err := c.Send(context.Background(), "Merhaba, nasılsınız?")
	require.NoError(t, err)

	msgs := c.Conversation().Messages
	require.Len(t, msgs, 3)
	assert.False(t, msgs[0].IsUser)
	assert.Contains(t, msgs[0].Content, "Merhaba")
}

func TestSendStartsUninitializedConversation(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), nil)

	_, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	// welcome + user + assistant even without an explicit Start.
	assert.Len(t, c.Conversation().Messages, 3)
}

func TestSendAbsorbsGenerativeFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"quota", fmt.Errorf("%w: status 429", llm.ErrQuota), "🚫 API quota exceeded"},
		{"rate limit", llm.ErrRateLimited, "⏰ Too many requests"},
		{"network", llm.ErrNetwork, "trouble connecting right now"},
		{"not configured", llm.ErrNotConfigured, "currently unavailable"},
		{"invalid key", llm.ErrInvalidKey, "currently unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{err: tt.err}
			c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), nil)
			c.Start(context.Background(), langdetect.English)

			result, err := c.Send(context.Background(), "hello")
			require.NoError(t, err, "failures are absorbed, not returned")

			assert.False(t, result.AssistantMessage.IsUser)
			assert.Contains(t, result.AssistantMessage.Content, tt.want)
			assert.Equal(t, StateIdle, c.State())
		})
	}
}

func TestSendUsesProfileInPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	profile := &types.ProfileSnapshot{Name: "Kenji", Role: "Designer", Industry: "Media", Country: "Japan"}
	c := NewController("user-1", newTestConversation(), profile, gen, store.NewMemory(), nil)
	c.Start(context.Background(), langdetect.English)

	_, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	systemPrompt := gen.calls[0][0].Parts[0].Text
	assert.Contains(t, systemPrompt, "USER PROFILE:")
	assert.Contains(t, systemPrompt, "- Name: Kenji")
}

func TestClearResetsConversation(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	transcripts := store.NewMemory()
	c := NewController("user-1", newTestConversation(), nil, gen, transcripts, nil)
	c.Start(context.Background(), langdetect.English)

	_, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	c.Clear(context.Background())
	assert.Empty(t, c.Conversation().Messages)
	assert.Equal(t, StateUninitialized, c.State())

	saved, err := transcripts.GetConversation(context.Background(), "user-1", newTestConversation().ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved.Messages)

	// A fresh Start regenerates the welcome.
	welcome := c.Start(context.Background(), langdetect.English)
	assert.NotEmpty(t, welcome.Content)
}

func TestOnUpdateReceivesSnapshots(t *testing.T) {
	var updates []types.Conversation
	gen := &fakeGenerator{reply: "ok"}
	c := NewController("user-1", newTestConversation(), nil, gen, store.NewMemory(), func(conv types.Conversation) {
		updates = append(updates, conv)
	})
	c.Start(context.Background(), langdetect.English)

	_, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)

	// welcome persist, optimistic user persist, assistant persist
	require.Len(t, updates, 3)
	assert.Len(t, updates[0].Messages, 1)
	assert.Len(t, updates[1].Messages, 2)
	assert.Len(t, updates[2].Messages, 3)
	assert.True(t, updates[1].Messages[1].IsUser)
}

func TestFallbackWelcomeOnInvalidContext(t *testing.T) {
	conv := newTestConversation()
	conv.Purpose = "Unsupported"

	c := NewController("user-1", conv, nil, &fakeGenerator{}, store.NewMemory(), nil)
	welcome := c.Start(context.Background(), langdetect.English)

	require.NotEmpty(t, welcome.Content)
	assert.True(t, strings.Contains(welcome.Content, "How can I help you today?"))
}
