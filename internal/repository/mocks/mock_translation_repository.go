package mocks

import (
	"context"

	"inbot/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Upsert(ctx context.Context, t *model.FileTranslation) (*model.FileTranslation, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileTranslation), args.Error(1)
}

func (m *MockTranslationRepository) FindByID(ctx context.Context, userID, id string) (*model.FileTranslation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileTranslation), args.Error(1)
}

func (m *MockTranslationRepository) List(ctx context.Context, userID string) ([]model.FileTranslation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileTranslation), args.Error(1)
}

func (m *MockTranslationRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
