package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"inbot/internal/llm"
	"inbot/internal/model"
	"inbot/internal/repository"
)

// AnswerErrorMessage is stored as the bot turn when the provider call fails.
const AnswerErrorMessage = "Error getting answer. Please try again."

// ConversationListResult is the service-level DTO for paginated conversations.
type ConversationListResult struct {
	Items []model.Conversation `json:"data"`
	Total int                  `json:"total"`
}

// ConversationDetail is a conversation with its turns, oldest first.
type ConversationDetail struct {
	Conversation *model.Conversation         `json:"conversation"`
	Messages     []model.ConversationMessage `json:"messages"`
}

// Exchange is the pair of turns produced by one question.
type Exchange struct {
	Question *model.ConversationMessage `json:"question"`
	Answer   *model.ConversationMessage `json:"answer"`
}

// ConversationService defines the chat use cases over one document.
type ConversationService interface {
	// Create extracts the file text once and caches it on the conversation. An empty name defaults to the file name.
	Create(ctx context.Context, userID, fileID, name string) (*model.Conversation, error)
	List(ctx context.Context, userID string, limit, offset int) (*ConversationListResult, error)
	Get(ctx context.Context, userID, id string) (*ConversationDetail, error)
	Delete(ctx context.Context, userID, id string) error
	// Ask appends the question, asks the provider and appends the answer. On provider failure the
	// error turn is appended and the provider error returned.
	Ask(ctx context.Context, userID, id, question string) (*Exchange, error)
}

type conversationService struct {
	files         FileService
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	llm           llm.Client
	logger        *log.Logger
}

func NewConversationService(
	files FileService,
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	client llm.Client,
	logger *log.Logger,
) ConversationService {
	return &conversationService{
		files:         files,
		conversations: conversations,
		messages:      messages,
		llm:           client,
		logger:        logger,
	}
}

func (s *conversationService) Create(ctx context.Context, userID, fileID, name string) (*model.Conversation, error) {
	if fileID == "" {
		return nil, ErrIDRequired
	}
	f, text, err := s.files.Text(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = f.Name
	}
	return s.conversations.Create(ctx, &model.Conversation{
		ID:              uuid.NewString(),
		UserID:          userID,
		FileID:          &f.ID,
		Name:            name,
		DocumentContent: text,
		CreatedAt:       time.Now().UTC(),
	})
}

func (s *conversationService) List(ctx context.Context, userID string, limit, offset int) (*ConversationListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.conversations.List(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ConversationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *conversationService) find(ctx context.Context, userID, id string) (*model.Conversation, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.conversations.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *conversationService) Get(ctx context.Context, userID, id string) (*ConversationDetail, error) {
	c, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListByConversation(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &ConversationDetail{Conversation: c, Messages: msgs}, nil
}

func (s *conversationService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.conversations.Delete(ctx, userID, id))
}

func (s *conversationService) Ask(ctx context.Context, userID, id, question string) (*Exchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrInvalidInput
	}
	c, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	asked, err := s.append(ctx, c.ID, model.RoleUser, question)
	if err != nil {
		return nil, err
	}

	answer, err := s.llm.Complete(ctx, llm.QAPrompt(c.DocumentContent, question), llm.QAOptions)
	if err != nil {
		if _, appendErr := s.append(ctx, c.ID, model.RoleBot, AnswerErrorMessage); appendErr != nil {
			s.logger.Error().
				Str("component", "service").
				Str("event", "conversation_error_turn_failed").
				Str("conversation_id", c.ID).
				Err(appendErr).
				Msg("")
		}
		return nil, err
	}

	answered, err := s.append(ctx, c.ID, model.RoleBot, answer)
	if err != nil {
		return nil, err
	}
	return &Exchange{Question: asked, Answer: answered}, nil
}

func (s *conversationService) append(ctx context.Context, conversationID, role, text string) (*model.ConversationMessage, error) {
	return s.messages.Append(ctx, &model.ConversationMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Message:        text,
		CreatedAt:      time.Now().UTC(),
	})
}
