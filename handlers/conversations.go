package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fuatnargis/telyna-ai/chat"
	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/store"
	"github.com/fuatnargis/telyna-ai/supabase"
	"github.com/fuatnargis/telyna-ai/types"
)

// ConversationHandlers serves the past-conversations surface over the
// transcript store.
type ConversationHandlers struct {
	Store store.TranscriptStore
}

func NewConversationHandlers(transcripts store.TranscriptStore) *ConversationHandlers {
	return &ConversationHandlers{Store: transcripts}
}

func (h *ConversationHandlers) List(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conversations, err := h.Store.ListConversations(r.Context(), userID)
	if err != nil {
		config.Logger.Error("Failed to list conversations:", err)
		writeError(w, "Failed to fetch conversations", http.StatusInternalServerError)
		return
	}
	if conversations == nil {
		conversations = []types.Conversation{}
	}

	writeJSON(w, http.StatusOK, types.GetConversationsResponse{
		Success:       true,
		Conversations: conversations,
	})
}

func (h *ConversationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conversationID, ok := conversationIDParam(w, r)
	if !ok {
		return
	}

	conv, err := h.Store.GetConversation(r.Context(), userID, conversationID)
	if err != nil {
		config.Logger.Error("Failed to load conversation:", err)
		writeError(w, "Failed to fetch conversation", http.StatusInternalServerError)
		return
	}
	if conv == nil {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, types.ConversationResponse{
		Success:      true,
		Conversation: *conv,
	})
}

func (h *ConversationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conversationID, ok := conversationIDParam(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteConversation(r.Context(), userID, conversationID); err != nil {
		config.Logger.Error("Failed to delete conversation:", err)
		writeError(w, "Failed to delete conversation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteConversationResponse{
		Success: true,
		Message: "Conversation deleted",
	})
}

// Clear wipes a conversation's messages without removing the conversation
// itself. The next chat call regenerates the welcome message.
func (h *ConversationHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	_, userID, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
		return
	}

	conversationID, ok := conversationIDParam(w, r)
	if !ok {
		return
	}

	conv, err := h.Store.GetConversation(r.Context(), userID, conversationID)
	if err != nil {
		config.Logger.Error("Failed to load conversation:", err)
		writeError(w, "Failed to fetch conversation", http.StatusInternalServerError)
		return
	}
	if conv == nil {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}

	controller := chat.NewController(userID, *conv, nil, nil, h.Store, nil)
	controller.Clear(r.Context())

	writeJSON(w, http.StatusOK, types.ConversationResponse{
		Success:      true,
		Conversation: controller.Conversation(),
	})
}

func conversationIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	conversationID := r.URL.Query().Get("id")
	if conversationID == "" {
		writeError(w, "Conversation id is required", http.StatusBadRequest)
		return "", false
	}
	if _, err := uuid.Parse(conversationID); err != nil {
		writeError(w, "Invalid conversation id", http.StatusBadRequest)
		return "", false
	}
	return conversationID, true
}
