// Package chat holds the per-conversation session controller: an explicit
// finite-state orchestrator over language detection, prompt composition,
// conversation framing, the generative call and transcript persistence.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/langdetect"
	"github.com/fuatnargis/telyna-ai/llm"
	"github.com/fuatnargis/telyna-ai/prompt"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/types"
)

// State of a session controller. Transitions:
// uninitialized → welcoming → idle ⇄ sending; Clear resets to uninitialized.
type State int

const (
	StateUninitialized State = iota
	StateWelcoming
	StateIdle
	StateSending
)

var (
	// ErrEmptyMessage rejects empty or whitespace-only sends. The session
	// state is unchanged.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy rejects a send while another send is in flight. The second
	// send is dropped, not queued.
	ErrBusy = errors.New("a message is already being sent")
)

// Controller owns one Conversation's message list for the lifetime of the
// conversation view. All collaborators are injected; failures from them are
// absorbed into visible assistant messages, never propagated to the caller
// as a broken conversation.
type Controller struct {
	mu      sync.Mutex
	state   State
	conv    types.Conversation
	userID  string
	profile *types.ProfileSnapshot

	generator llm.Generator
	store     store.TranscriptStore
	onUpdate  func(types.Conversation)
}

// TurnResult is what a successful (or absorbed-failure) send yields.
type TurnResult struct {
	UserMessage      types.Message
	AssistantMessage types.Message
	Language         langdetect.Language
}

func NewController(
	userID string,
	conv types.Conversation,
	profile *types.ProfileSnapshot,
	generator llm.Generator,
	transcripts store.TranscriptStore,
	onUpdate func(types.Conversation),
) *Controller {
	state := StateUninitialized
	if len(conv.Messages) > 0 {
		state = StateIdle
	}
	return &Controller{
		state:     state,
		conv:      conv,
		userID:    userID,
		profile:   profile,
		generator: generator,
		store:     transcripts,
		onUpdate:  onUpdate,
	}
}

// Start generates the welcome message for a fresh conversation in the given
// language, synchronously and without any network call, then moves to idle.
// Callers pass the user's stored language preference, or English. On a
// conversation that already has messages it only settles the state. A
// failed welcome generation falls back to a static message; Start never
// leaves the controller in a blocking state.
func (c *Controller) Start(ctx context.Context, lang langdetect.Language) types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(ctx, lang)
}

func (c *Controller) startLocked(ctx context.Context, lang langdetect.Language) types.Message {
	if c.state != StateUninitialized || len(c.conv.Messages) > 0 {
		if c.state == StateUninitialized {
			c.state = StateIdle
		}
		return types.Message{}
	}

	c.state = StateWelcoming

	content, err := prompt.WelcomeMessage(c.chatContext(), lang)
	if err != nil {
		config.Logger.Warn("Failed to generate welcome message:", err)
		content = fmt.Sprintf("Hello! I'm your %s %s Assistant. How can I help you today? 😊",
			c.conv.Country, c.conv.Purpose)
	}

	welcome := newMessage(content, false)
	c.conv.Messages = append(c.conv.Messages, welcome)
	c.state = StateIdle
	c.persistLocked(ctx)
	return welcome
}

// Send runs one user turn: language detection, optimistic user append,
// prompt composition, conversation framing, the generative call, and the
// assistant append. A generative failure is converted into a categorized
// assistant-role error message; the controller always returns to idle.
func (c *Controller) Send(ctx context.Context, text string) (TurnResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TurnResult{}, ErrEmptyMessage
	}

	// Detected per message; prior turns' detection is not consulted.
	lang := langdetect.Detect(trimmed)

	c.mu.Lock()
	if c.state == StateSending {
		c.mu.Unlock()
		return TurnResult{}, ErrBusy
	}
	if c.state == StateUninitialized {
		// Welcome generation always precedes the first accepted send, in
		// the language of the message that triggered it.
		c.startLocked(ctx, lang)
	}
	c.state = StateSending

	userMsg := newMessage(trimmed, true)
	c.conv.Messages = append(c.conv.Messages, userMsg)
	c.persistLocked(ctx)

	systemPrompt := prompt.ComposeSystemPrompt(c.chatContext(), lang)
	prior := c.conv.Messages[:len(c.conv.Messages)-1]
	contents := llm.FrameConversation(systemPrompt, prior, trimmed)
	c.mu.Unlock()

	reply, genErr := c.generator.GenerateContent(ctx, contents)

	c.mu.Lock()
	defer c.mu.Unlock()

	var assistantMsg types.Message
	if genErr != nil {
		config.Logger.Error("Failed to get AI response:", genErr)
		assistantMsg = newMessage(failureContent(genErr), false)
	} else {
		assistantMsg = newMessage(reply, false)
	}

	c.conv.Messages = append(c.conv.Messages, assistantMsg)
	c.state = StateIdle
	c.persistLocked(ctx)

	return TurnResult{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Language:         lang,
	}, nil
}

// Clear wipes the message list and resets to uninitialized; the next Start
// regenerates the welcome message.
func (c *Controller) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSending {
		return
	}
	c.conv.Messages = nil
	c.state = StateUninitialized
	c.persistLocked(ctx)
}

// Conversation returns a snapshot of the owned conversation.
func (c *Controller) Conversation() types.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := c.conv
	snapshot.Messages = make([]types.Message, len(c.conv.Messages))
	copy(snapshot.Messages, c.conv.Messages)
	return snapshot
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) chatContext() types.ChatContext {
	return types.ChatContext{
		Country:     c.conv.Country,
		Purpose:     c.conv.Purpose,
		UserProfile: c.profile,
	}
}

// persistLocked mirrors the conversation into the transcript store and
// notifies the owning page. Persistence failures are logged, not surfaced:
// the in-memory conversation stays usable either way.
func (c *Controller) persistLocked(ctx context.Context) {
	if c.store != nil {
		if err := c.store.SaveConversation(ctx, c.userID, c.conv); err != nil {
			config.Logger.Warn("Failed to persist conversation:", err)
		}
	}
	if c.onUpdate != nil {
		snapshot := c.conv
		snapshot.Messages = make([]types.Message, len(c.conv.Messages))
		copy(snapshot.Messages, c.conv.Messages)
		c.onUpdate(snapshot)
	}
}

// failureContent maps a generative failure onto the user-visible assistant
// message for its category.
func failureContent(err error) string {
	switch llm.Categorize(err) {
	case llm.CategoryQuota:
		return "🚫 API quota exceeded. Please check your Gemini API usage limits and billing details. You can continue tomorrow when the quota resets, or upgrade your plan for more requests."
	case llm.CategoryRateLimited:
		return "⏰ Too many requests. Please wait a moment before trying again."
	case llm.CategoryNetwork:
		return "I'm sorry, I'm having trouble connecting right now. Please check your internet connection and try again. 🔄"
	case llm.CategoryNotConfigured, llm.CategoryInvalidKey:
		return "❌ The AI service is currently unavailable. Please try again later."
	default:
		return fmt.Sprintf("❌ %v", err)
	}
}

func newMessage(content string, isUser bool) types.Message {
	now := time.Now()
	return types.Message{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Content:   content,
		IsUser:    isUser,
		Timestamp: now,
	}
}
