package mocks

import (
	"context"

	"inbot/internal/model"
	"inbot/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) Create(ctx context.Context, userID, fileID, name string) (*model.Conversation, error) {
	args := m.Called(ctx, userID, fileID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationService) List(ctx context.Context, userID string, limit, offset int) (*service.ConversationListResult, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConversationListResult), args.Error(1)
}

func (m *MockConversationService) Get(ctx context.Context, userID, id string) (*service.ConversationDetail, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConversationDetail), args.Error(1)
}

func (m *MockConversationService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockConversationService) Ask(ctx context.Context, userID, id, question string) (*service.Exchange, error) {
	args := m.Called(ctx, userID, id, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Exchange), args.Error(1)
}
