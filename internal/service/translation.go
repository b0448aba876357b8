package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"inbot/internal/llm"
	"inbot/internal/model"
	"inbot/internal/report"
	"inbot/internal/repository"
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// TranslationService defines the translate, save and export use cases.
type TranslationService interface {
	// Preview translates a stored file without saving anything.
	Preview(ctx context.Context, userID, fileID, language string) (string, error)
	// Translate sends text window by window in order. Any failed window aborts the whole translation.
	Translate(ctx context.Context, text, language string) (string, error)
	// Save upserts on (file, language); saving again overwrites the text.
	Save(ctx context.Context, userID, fileID, language, translation string) (*model.FileTranslation, error)
	List(ctx context.Context, userID string) ([]model.FileTranslation, error)
	Get(ctx context.Context, userID, id string) (*model.FileTranslation, error)
	Delete(ctx context.Context, userID, id string) error
	// PDF renders a saved translation and returns the suggested file name.
	PDF(ctx context.Context, userID, id string) ([]byte, string, error)
}

type translationService struct {
	files FileService
	repo  repository.TranslationRepository
	llm   llm.Client
}

func NewTranslationService(files FileService, repo repository.TranslationRepository, client llm.Client) TranslationService {
	return &translationService{files: files, repo: repo, llm: client}
}

func (s *translationService) Preview(ctx context.Context, userID, fileID, language string) (string, error) {
	if fileID == "" {
		return "", ErrIDRequired
	}
	if strings.TrimSpace(language) == "" {
		return "", ErrInvalidInput
	}
	_, text, err := s.files.Text(ctx, userID, fileID)
	if err != nil {
		return "", err
	}
	return s.Translate(ctx, text, language)
}

func (s *translationService) Translate(ctx context.Context, text, language string) (string, error) {
	var b strings.Builder
	for i, chunk := range llm.ChunkText(text, llm.TranslationChunkSize) {
		out, err := s.llm.Complete(ctx, llm.TranslationPrompt(language, chunk), llm.TranslationOptions)
		if err != nil {
			return "", fmt.Errorf("translate window %d: %w", i+1, err)
		}
		b.WriteString(strings.TrimSpace(out))
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func (s *translationService) Save(ctx context.Context, userID, fileID, language, translation string) (*model.FileTranslation, error) {
	language = strings.TrimSpace(language)
	if language == "" || translation == "" {
		return nil, ErrInvalidInput
	}
	f, err := s.files.Get(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	saved, err := s.repo.Upsert(ctx, &model.FileTranslation{
		ID:          uuid.NewString(),
		FileID:      f.ID,
		Language:    language,
		Translation: translation,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	saved.FileName = f.Name
	return saved, nil
}

func (s *translationService) List(ctx context.Context, userID string) ([]model.FileTranslation, error) {
	return s.repo.List(ctx, userID)
}

func (s *translationService) Get(ctx context.Context, userID, id string) (*model.FileTranslation, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (s *translationService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, userID, id))
}

func (s *translationService) PDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	out, err := report.TranslationPDF(t.Language, t.Translation)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("translation_%s.pdf", unsafeFileNameChars.ReplaceAllString(t.Language, "_")), nil
}
