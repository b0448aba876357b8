package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbot/internal/model"
)

var messageCols = []string{"id", "conversation_id", "role", "message", "created_at"}

func TestMessagePostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessagePostgres(db)
	now := time.Now().UTC()
	m := &model.ConversationMessage{ID: "msg-1", ConversationID: "conv-1", Role: model.RoleUser, Message: "hi", CreatedAt: now}

	mock.ExpectQuery("INSERT INTO conversation_messages").
		WithArgs(m.ID, m.ConversationID, m.Role, m.Message, now).
		WillReturnRows(sqlmock.NewRows(messageCols).AddRow(m.ID, m.ConversationID, m.Role, m.Message, now))

	out, err := repo.Append(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, "msg-1", out.ID)
	assert.Equal(t, model.RoleUser, out.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagePostgres_Append_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO conversation_messages").WillReturnError(errors.New("fk violation"))

	out, err := NewMessagePostgres(db).Append(context.Background(), &model.ConversationMessage{ConversationID: "gone"})

	assert.Nil(t, out)
	assert.EqualError(t, err, "fk violation")
}

func TestMessagePostgres_ListByConversation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM conversation_messages WHERE conversation_id = \\$1 ORDER BY created_at ASC").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow("m1", "conv-1", "user", "question", t1).
			AddRow("m2", "conv-1", "bot", "answer", t1.Add(time.Second)))

	items, err := NewMessagePostgres(db).ListByConversation(context.Background(), "conv-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.RoleUser, items[0].Role)
	assert.Equal(t, model.RoleBot, items[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagePostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM conversation_messages m JOIN conversations c ON c.id = m.conversation_id WHERE c.user_id = \\$1").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(messageCols))

	items, err := NewMessagePostgres(db).ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagePostgres_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM conversation_messages").
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("m1"))

	_, err = NewMessagePostgres(db).ListByConversation(context.Background(), "conv-1")
	assert.Error(t, err)
}
