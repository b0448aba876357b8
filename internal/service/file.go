package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/phuslu/log"

	"inbot/internal/extract"
	"inbot/internal/llm"
	"inbot/internal/model"
	"inbot/internal/repository"
	"inbot/internal/storage"
)

// DownloadURLExpiry is how long a signed download link stays valid.
const DownloadURLExpiry = 10 * time.Minute

// UploadInput describes one multipart upload.
type UploadInput struct {
	UserID      string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// UploadResult carries the stored file. IngestError is set when the file was stored
// but text extraction or embedding failed; the file can be re-ingested later.
type UploadResult struct {
	File        *model.File `json:"file"`
	IngestError string      `json:"ingest_error,omitempty"`
}

// FileListInput holds the list filters as they arrive from the client.
type FileListInput struct {
	Limit  int
	Offset int
	Search string
	// Label selects a folder; UncategorizedLabel selects files without one; empty means all.
	Label string
	Sort  string
}

// FileListResult is the service-level DTO for paginated files.
type FileListResult struct {
	Items []model.File `json:"data"`
	Total int          `json:"total"`
}

// FileService defines the use cases for a user's documents.
type FileService interface {
	// Upload stores the object, saves the row (rolling the object back if that fails), then ingests it.
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	List(ctx context.Context, userID string, in FileListInput) (*FileListResult, error)
	Get(ctx context.Context, userID, id string) (*model.File, error)
	Rename(ctx context.Context, userID, id, name string) (*model.File, error)
	// SetLabel moves the file to a folder; "" or UncategorizedLabel clears it.
	SetLabel(ctx context.Context, userID, id, label string) (*model.File, error)
	DownloadURL(ctx context.Context, userID, id string) (string, error)
	// Delete removes the object first, then the row. Either failure is returned.
	Delete(ctx context.Context, userID, id string) error
	// Ingest re-runs extraction and embedding for a stored file.
	Ingest(ctx context.Context, userID, id string) (*model.File, error)
	// Ask answers a question about the whole text of one file without persisting anything.
	Ask(ctx context.Context, userID, id, question string) (string, error)
	// Text returns the extracted text of a stored file.
	Text(ctx context.Context, userID, id string) (*model.File, string, error)
}

type fileService struct {
	store  storage.Storage
	repo   repository.FileRepository
	llm    llm.Client
	logger *log.Logger
}

func NewFileService(store storage.Storage, repo repository.FileRepository, client llm.Client, logger *log.Logger) FileService {
	return &fileService{store: store, repo: repo, llm: client, logger: logger}
}

func (s *fileService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	if in.UserID == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(in.Filename) == "" {
		return nil, ErrInvalidInput
	}
	if !extract.Supported(in.Filename) {
		return nil, fmt.Errorf("%w: %q", extract.ErrUnsupportedFileType, filepath.Ext(in.Filename))
	}

	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	contentType := in.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	key := path.Join("files", in.UserID, uuid.NewString()+ext)

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	if objInfo.Key != "" {
		key = objInfo.Key
	}

	file := &model.File{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Name:        in.Filename,
		Size:        int64(len(data)),
		FileType:    extract.FileType(in.Filename),
		ContentType: contentType,
		StoragePath: key,
		URL:         s.store.PublicURL(key),
		UploadedAt:  time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, file)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	result := &UploadResult{File: stored}
	if err := s.ingest(ctx, stored, data); err != nil {
		s.logger.Warn().
			Str("component", "service").
			Str("event", "file_ingest_failed").
			Str("file_id", stored.ID).
			Err(err).
			Msg("")
		result.IngestError = err.Error()
	}
	return result, nil
}

// ingest extracts the text, embeds it and writes the vector back onto the row.
func (s *fileService) ingest(ctx context.Context, f *model.File, data []byte) error {
	text, err := extract.ByType(f.FileType, data)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	vec, err := s.llm.Embed(ctx, text)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateEmbedding(ctx, f.UserID, f.ID, vec); err != nil {
		return fmt.Errorf("save embedding: %w", err)
	}
	f.HasEmbedding = true
	return nil
}

// List returns paginated files without exposing repository types.
func (s *fileService) List(ctx context.Context, userID string, in FileListInput) (*FileListResult, error) {
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	q := repository.FileQuery{
		PageQuery: repository.PageQuery{Limit: in.Limit, Offset: in.Offset},
		Search:    strings.TrimSpace(in.Search),
		Sort:      repository.SortUploadedAt,
	}
	if in.Sort == repository.SortName {
		q.Sort = repository.SortName
	}
	if in.Label != "" {
		label := in.Label
		if label == model.UncategorizedLabel {
			label = ""
		}
		q.Label = &label
	}

	res, err := s.repo.List(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return &FileListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *fileService) Get(ctx context.Context, userID, id string) (*model.File, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *fileService) Rename(ctx context.Context, userID, id, name string) (*model.File, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	f, err := s.repo.Rename(ctx, userID, id, name)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *fileService) SetLabel(ctx context.Context, userID, id, label string) (*model.File, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	var value *string
	if label = strings.TrimSpace(label); label != "" && label != model.UncategorizedLabel {
		value = &label
	}
	f, err := s.repo.UpdateLabel(ctx, userID, id, value)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *fileService) DownloadURL(ctx context.Context, userID, id string) (string, error) {
	f, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignGet(ctx, f.StoragePath, f.Name, DownloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// Delete removes the object from storage, then deletes its record.
func (s *fileService) Delete(ctx context.Context, userID, id string) error {
	f, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	// storage first; if this fails the row is kept so the object is not orphaned
	if err := s.store.Delete(ctx, f.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete row: %w", notFound(err))
	}
	return nil
}

func (s *fileService) Ingest(ctx context.Context, userID, id string) (*model.File, error) {
	f, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	data, err := storage.ReadAll(ctx, s.store, f.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	if err := s.ingest(ctx, f, data); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fileService) Ask(ctx context.Context, userID, id, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrInvalidInput
	}
	_, text, err := s.Text(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return s.llm.Complete(ctx, llm.QAPrompt(text, question), llm.QAOptions)
}

func (s *fileService) Text(ctx context.Context, userID, id string) (*model.File, string, error) {
	f, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	data, err := storage.ReadAll(ctx, s.store, f.StoragePath)
	if err != nil {
		return nil, "", fmt.Errorf("fetch file: %w", err)
	}
	text, err := extract.ByType(f.FileType, data)
	if err != nil {
		return nil, "", err
	}
	return f, text, nil
}
