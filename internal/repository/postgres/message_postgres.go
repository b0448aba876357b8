package postgres

import (
	"context"
	"database/sql"

	"inbot/internal/model"
	"inbot/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

func (r *MessagePostgres) Append(ctx context.Context, m *model.ConversationMessage) (*model.ConversationMessage, error) {
	const q = `
		INSERT INTO conversation_messages (id, conversation_id, role, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, conversation_id, role, message, created_at
	`
	var out model.ConversationMessage
	if err := r.db.QueryRowContext(ctx, q, m.ID, m.ConversationID, m.Role, m.Message, m.CreatedAt).Scan(
		&out.ID,
		&out.ConversationID,
		&out.Role,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MessagePostgres) ListByConversation(ctx context.Context, conversationID string) ([]model.ConversationMessage, error) {
	const q = `
		SELECT id, conversation_id, role, message, created_at
		FROM conversation_messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, conversationID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func (r *MessagePostgres) ListByUser(ctx context.Context, userID string) ([]model.ConversationMessage, error) {
	const q = `
		SELECT m.id, m.conversation_id, m.role, m.message, m.created_at
		FROM conversation_messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE c.user_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func collectMessages(rows *sql.Rows) ([]model.ConversationMessage, error) {
	defer rows.Close()

	items := make([]model.ConversationMessage, 0)
	for rows.Next() {
		var m model.ConversationMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
