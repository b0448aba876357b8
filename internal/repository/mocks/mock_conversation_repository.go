package mocks

import (
	"context"

	"inbot/internal/model"
	"inbot/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, c *model.Conversation) (*model.Conversation, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByID(ctx context.Context, userID, id string) (*model.Conversation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepository) List(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Conversation], error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Conversation]), args.Error(1)
}

func (m *MockConversationRepository) ListAll(ctx context.Context, userID string) ([]model.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Append(ctx context.Context, msg *model.ConversationMessage) (*model.ConversationMessage, error) {
	args := m.Called(ctx, msg)
	if f, ok := args.Get(0).(func(context.Context, *model.ConversationMessage) *model.ConversationMessage); ok {
		return f(ctx, msg), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConversationMessage), args.Error(1)
}

func (m *MockMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]model.ConversationMessage, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConversationMessage), args.Error(1)
}

func (m *MockMessageRepository) ListByUser(ctx context.Context, userID string) ([]model.ConversationMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConversationMessage), args.Error(1)
}
