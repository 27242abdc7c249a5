package types

import (
	"fmt"
	"time"
)

// Purpose is the closed set of trip purposes a conversation can be scoped to.
type Purpose string

const (
	PurposeBusinessMeeting Purpose = "Business Meeting"
	PurposeTourism         Purpose = "Tourism"
	PurposeDailyLife       Purpose = "Daily Life"
	PurposeEmergency       Purpose = "Emergency"
	PurposeEducation       Purpose = "Education"
	PurposeHealthcare      Purpose = "Healthcare"
	PurposeShopping        Purpose = "Shopping"
	PurposeTransportation  Purpose = "Transportation"
	PurposeAccommodation   Purpose = "Accommodation"
)

// Purposes lists every valid purpose, in display order.
var Purposes = []Purpose{
	PurposeBusinessMeeting,
	PurposeTourism,
	PurposeDailyLife,
	PurposeEmergency,
	PurposeEducation,
	PurposeHealthcare,
	PurposeShopping,
	PurposeTransportation,
	PurposeAccommodation,
}

func (p Purpose) Valid() bool {
	switch p {
	case PurposeBusinessMeeting, PurposeTourism, PurposeDailyLife,
		PurposeEmergency, PurposeEducation, PurposeHealthcare,
		PurposeShopping, PurposeTransportation, PurposeAccommodation:
		return true
	}
	return false
}

// Message is a single chat turn. Immutable once created; ordered by
// insertion within its Conversation.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a destination/purpose-scoped, append-only message sequence.
// It is never deleted automatically; only an explicit user action removes it.
type Conversation struct {
	ID          string    `json:"id"`
	Country     string    `json:"country"`
	Purpose     Purpose   `json:"purpose"`
	CreatedDate time.Time `json:"created_date"`
	Messages    []Message `json:"messages"`
}

// ChatContext carries the inputs that shape prompt generation for one
// conversation. Immutable for the conversation's lifetime; a new context
// implies a new conversation.
type ChatContext struct {
	Country     string           `json:"country"`
	Purpose     Purpose          `json:"purpose"`
	UserProfile *ProfileSnapshot `json:"user_profile,omitempty"`
}

// Validate checks the invariants a ChatContext must hold before any prompt
// can be composed from it.
func (c ChatContext) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("chat context has no destination country")
	}
	if !c.Purpose.Valid() {
		return fmt.Errorf("invalid purpose %q", c.Purpose)
	}
	return nil
}

// ProfileSnapshot is a read-only projection of the stored user profile,
// captured at message-send time.
type ProfileSnapshot struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Industry  string `json:"industry"`
	Country   string `json:"country"`
	AgeRange  string `json:"age_range"`
	Gender    string `json:"gender"`
	IsPremium bool   `json:"is_premium"`
}

type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Country        string `json:"country,omitempty"`
	Purpose        string `json:"purpose,omitempty"`
	Message        string `json:"message"`
}

type ChatResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversation_id,omitempty"`
	UserMessage    string `json:"user_message,omitempty"`
	AIResponse     string `json:"ai_response,omitempty"`
	DisplayHTML    string `json:"display_html,omitempty"`
	Language       string `json:"language,omitempty"`
	ErrorMessage   string `json:"error,omitempty"`
}

type GetConversationsResponse struct {
	Success       bool           `json:"success"`
	Conversations []Conversation `json:"conversations"`
	ErrorMessage  string         `json:"error,omitempty"`
}

type ConversationResponse struct {
	Success      bool         `json:"success"`
	Conversation Conversation `json:"conversation"`
	ErrorMessage string       `json:"error,omitempty"`
}

type DeleteConversationResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
