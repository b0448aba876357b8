package mocks

import (
	"context"

	"inbot/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Preview(ctx context.Context, userID, fileID, language string) (string, error) {
	args := m.Called(ctx, userID, fileID, language)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationService) Translate(ctx context.Context, text, language string) (string, error) {
	args := m.Called(ctx, text, language)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationService) Save(ctx context.Context, userID, fileID, language, translation string) (*model.FileTranslation, error) {
	args := m.Called(ctx, userID, fileID, language, translation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileTranslation), args.Error(1)
}

func (m *MockTranslationService) List(ctx context.Context, userID string) ([]model.FileTranslation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileTranslation), args.Error(1)
}

func (m *MockTranslationService) Get(ctx context.Context, userID, id string) (*model.FileTranslation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileTranslation), args.Error(1)
}

func (m *MockTranslationService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockTranslationService) PDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
