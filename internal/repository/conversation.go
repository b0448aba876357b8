package repository

import (
	"context"

	"inbot/internal/model"
)

// ConversationRepository persists chat sessions.
type ConversationRepository interface {
	Create(ctx context.Context, c *model.Conversation) (*model.Conversation, error)
	// FindByID includes the cached document content.
	FindByID(ctx context.Context, userID, id string) (*model.Conversation, error)
	List(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.Conversation], error)
	ListAll(ctx context.Context, userID string) ([]model.Conversation, error)
	// Delete removes the conversation and, by cascade, its messages. A missing row yields sql.ErrNoRows.
	Delete(ctx context.Context, userID, id string) error
}

// MessageRepository persists append-only conversation turns.
type MessageRepository interface {
	Append(ctx context.Context, m *model.ConversationMessage) (*model.ConversationMessage, error)
	// ListByConversation returns turns oldest first.
	ListByConversation(ctx context.Context, conversationID string) ([]model.ConversationMessage, error)
	// ListByUser returns every turn of every conversation of the user.
	ListByUser(ctx context.Context, userID string) ([]model.ConversationMessage, error)
}
