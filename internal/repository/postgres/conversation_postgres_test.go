package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbot/internal/model"
	"inbot/internal/repository"
)

var conversationCols = []string{"id", "user_id", "file_id", "conversation_name", "created_at"}

func TestConversationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConversationPostgres(db)
	fileID := "file-1"
	now := time.Now().UTC()
	c := &model.Conversation{
		ID:              "conv-1",
		UserID:          "user-1",
		FileID:          &fileID,
		Name:            "notes.txt",
		DocumentContent: "hello world",
		CreatedAt:       now,
	}

	mock.ExpectQuery("INSERT INTO conversations").
		WithArgs(c.ID, c.UserID, fileID, c.Name, c.DocumentContent, now).
		WillReturnRows(sqlmock.NewRows(conversationCols).AddRow(c.ID, c.UserID, fileID, c.Name, now))

	out, err := repo.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, "conv-1", out.ID)
	assert.Equal(t, "hello world", out.DocumentContent)
	require.NotNil(t, out.FileID)
	assert.Equal(t, fileID, *out.FileID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConversationPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM conversations WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("conv-1", "user-1").
		WillReturnRows(sqlmock.NewRows(append(conversationCols, "document_content")).
			AddRow("conv-1", "user-1", nil, "chat", time.Now(), "cached text"))

	c, err := repo.FindByID(context.Background(), "user-1", "conv-1")

	require.NoError(t, err)
	assert.Nil(t, c.FileID)
	assert.Equal(t, "cached text", c.DocumentContent)
}

func TestConversationPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConversationPostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM conversations WHERE user_id = \\$1").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM conversations WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs("user-1", 1, 0).
		WillReturnRows(sqlmock.NewRows(conversationCols).AddRow("conv-2", "user-1", nil, "latest", time.Now()))

	res, err := repo.List(context.Background(), "user-1", repository.PageQuery{Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConversationPostgres(db)

	mock.ExpectExec("DELETE FROM conversations WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("conv-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM conversations").
		WithArgs("conv-9", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "user-1", "conv-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "user-1", "conv-9"), sql.ErrNoRows)
}

func TestMessagePostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessagePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	cols := []string{"id", "conversation_id", "role", "message", "created_at"}

	t.Run("append", func(t *testing.T) {
		m := &model.ConversationMessage{ID: "m1", ConversationID: "conv-1", Role: model.RoleUser, Message: "hi", CreatedAt: now}
		mock.ExpectQuery("INSERT INTO conversation_messages").
			WithArgs("m1", "conv-1", "user", "hi", now).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("m1", "conv-1", "user", "hi", now))

		out, err := repo.Append(ctx, m)

		require.NoError(t, err)
		assert.Equal(t, model.RoleUser, out.Role)
	})

	t.Run("list by conversation oldest first", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM conversation_messages WHERE conversation_id = \\$1 ORDER BY created_at ASC").
			WithArgs("conv-1").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("m1", "conv-1", "user", "hi", now).
				AddRow("m2", "conv-1", "bot", "hello", now.Add(time.Second)))

		msgs, err := repo.ListByConversation(ctx, "conv-1")

		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, model.RoleBot, msgs[1].Role)
	})

	t.Run("list by user joins conversations", func(t *testing.T) {
		mock.ExpectQuery("JOIN conversations c ON c.id = m.conversation_id WHERE c.user_id = \\$1").
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("m1", "conv-1", "user", "hi", now))

		msgs, err := repo.ListByUser(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, msgs, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
