package postgres

import (
	"context"
	"database/sql"

	"inbot/internal/model"
	"inbot/internal/repository"
)

// ConversationPostgres is a PostgreSQL implementation of repository.ConversationRepository.
type ConversationPostgres struct {
	db *sql.DB
}

// NewConversationPostgres creates a new ConversationPostgres repository.
func NewConversationPostgres(db *sql.DB) *ConversationPostgres {
	return &ConversationPostgres{db: db}
}

var _ repository.ConversationRepository = (*ConversationPostgres)(nil)

const conversationColumns = `id, user_id, file_id, conversation_name, created_at`

func scanConversation(s rowScanner) (*model.Conversation, error) {
	var c model.Conversation
	if err := s.Scan(&c.ID, &c.UserID, &c.FileID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationPostgres) Create(ctx context.Context, c *model.Conversation) (*model.Conversation, error) {
	const q = `
		INSERT INTO conversations (id, user_id, file_id, conversation_name, document_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + conversationColumns
	out, err := scanConversation(r.db.QueryRowContext(ctx, q,
		c.ID,
		c.UserID,
		c.FileID,
		c.Name,
		c.DocumentContent,
		c.CreatedAt,
	))
	if err != nil {
		return nil, err
	}
	out.DocumentContent = c.DocumentContent
	return out, nil
}

func (r *ConversationPostgres) FindByID(ctx context.Context, userID, id string) (*model.Conversation, error) {
	const q = `
		SELECT id, user_id, file_id, conversation_name, created_at, document_content
		FROM conversations
		WHERE id = $1 AND user_id = $2
	`
	var c model.Conversation
	if err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.FileID,
		&c.Name,
		&c.CreatedAt,
		&c.DocumentContent,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationPostgres) List(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Conversation], error) {
	const qCount = `SELECT COUNT(*) FROM conversations WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := collectConversations(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Conversation]{Items: items, Total: total}, nil
}

func (r *ConversationPostgres) ListAll(ctx context.Context, userID string) ([]model.Conversation, error) {
	const q = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectConversations(rows)
}

func collectConversations(rows *sql.Rows) ([]model.Conversation, error) {
	defer rows.Close()

	items := make([]model.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ConversationPostgres) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM conversations WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
