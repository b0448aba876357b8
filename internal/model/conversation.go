package model

import "time"

// Message roles stored in conversation_messages.role.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Conversation is a chat session over one document.
// DocumentContent caches the extracted text at creation time.
type Conversation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FileID          *string   `json:"file_id"`
	Name            string    `json:"conversation_name"`
	DocumentContent string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// ConversationMessage is one append-only turn.
type ConversationMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
