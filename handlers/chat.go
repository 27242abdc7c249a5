package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fuatnargis/telyna-ai/chat"
	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/format"
	"github.com/fuatnargis/telyna-ai/langdetect"
	"github.com/fuatnargis/telyna-ai/llm"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/supabase"
	"github.com/fuatnargis/telyna-ai/types"
)

// ChatHandlers serves the conversational endpoints. Each request builds a
// session controller over the caller's conversation, runs one turn, and
// returns both the raw assistant text and its rendered HTML.
//
// Controllers are per-request, so their internal sending state cannot guard
// across requests; the inFlight set serializes sends per conversation id. A
// concurrent send for the same conversation is rejected, not queued.
type ChatHandlers struct {
	Generator llm.Generator
	Store     store.TranscriptStore

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewChatHandlers(generator llm.Generator, transcripts store.TranscriptStore) *ChatHandlers {
	return &ChatHandlers{
		Generator: generator,
		Store:     transcripts,
		inFlight:  make(map[string]bool),
	}
}

// beginSend marks the conversation as having a send in flight. Reports false
// when one already is.
func (h *ChatHandlers) beginSend(conversationID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inFlight[conversationID] {
		return false
	}
	h.inFlight[conversationID] = true
	return true
}

func (h *ChatHandlers) endSend(conversationID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.inFlight, conversationID)
}

func (h *ChatHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, "Message is required", http.StatusBadRequest)
		return
	}

	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conv, errMsg, status := h.resolveConversation(r, userID, req)
	if errMsg != "" {
		writeError(w, errMsg, status)
		return
	}

	if !h.beginSend(conv.ID) {
		writeError(w, "A message is already being sent for this conversation", http.StatusConflict)
		return
	}
	defer h.endSend(conv.ID)

	profile, err := supabase.GetProfile(client, userID)
	if err != nil {
		// The chat must work for users without a readable profile.
		config.Logger.Warn("Failed to fetch profile for chat:", err)
		profile = nil
	}

	controller := chat.NewController(userID, conv, profile, h.Generator, h.Store, nil)
	controller.Start(r.Context(), h.welcomeLanguage(r, userID))

	result, err := controller.Send(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			writeError(w, "Message is required", http.StatusBadRequest)
		case errors.Is(err, chat.ErrBusy):
			writeError(w, "A message is already being sent for this conversation", http.StatusConflict)
		default:
			writeError(w, "Failed to process message", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:        true,
		ConversationID: conv.ID,
		UserMessage:    result.UserMessage.Content,
		AIResponse:     result.AssistantMessage.Content,
		DisplayHTML:    format.AssistantMessage(result.AssistantMessage.Content),
		Language:       string(result.Language),
	})
}

// Welcome starts a fresh conversation and returns it with its opening
// assistant message. No generative call is involved.
func (h *ChatHandlers) Welcome(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	client, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conv, errMsg, status := newConversation(req)
	if errMsg != "" {
		writeError(w, errMsg, status)
		return
	}

	profile, err := supabase.GetProfile(client, userID)
	if err != nil {
		config.Logger.Warn("Failed to fetch profile for welcome:", err)
		profile = nil
	}

	controller := chat.NewController(userID, conv, profile, h.Generator, h.Store, nil)
	controller.Start(r.Context(), h.welcomeLanguage(r, userID))

	writeJSON(w, http.StatusOK, types.ConversationResponse{
		Success:      true,
		Conversation: controller.Conversation(),
	})
}

// welcomeLanguage resolves the stored language preference for welcome
// generation. English when unset or unreadable; an unknown code falls
// through to the English welcome arm downstream.
func (h *ChatHandlers) welcomeLanguage(r *http.Request, userID string) langdetect.Language {
	pref, err := h.Store.Get(r.Context(), scopedKey(config.KeyPreferencesLanguage, userID), "")
	if err != nil || pref == "" {
		return langdetect.English
	}
	return langdetect.Language(pref)
}

// resolveConversation loads an existing conversation by id, or creates a new
// one from the request's country and purpose.
func (h *ChatHandlers) resolveConversation(r *http.Request, userID string, req types.ChatRequest) (types.Conversation, string, int) {
	if req.ConversationID == "" {
		return newConversation(req)
	}

	if _, err := uuid.Parse(req.ConversationID); err != nil {
		return types.Conversation{}, "Invalid conversation id", http.StatusBadRequest
	}

	conv, err := h.Store.GetConversation(r.Context(), userID, req.ConversationID)
	if err != nil {
		config.Logger.Error("Failed to load conversation:", err)
		return types.Conversation{}, "Failed to load conversation", http.StatusInternalServerError
	}
	if conv == nil {
		return types.Conversation{}, "Conversation not found", http.StatusNotFound
	}
	return *conv, "", 0
}

func newConversation(req types.ChatRequest) (types.Conversation, string, int) {
	if strings.TrimSpace(req.Country) == "" {
		return types.Conversation{}, "Country is required to start a conversation", http.StatusBadRequest
	}
	purpose := types.Purpose(req.Purpose)
	if !purpose.Valid() {
		return types.Conversation{}, "Invalid purpose", http.StatusBadRequest
	}

	return types.Conversation{
		ID:          uuid.NewString(),
		Country:     strings.TrimSpace(req.Country),
		Purpose:     purpose,
		CreatedDate: time.Now(),
	}, "", 0
}
