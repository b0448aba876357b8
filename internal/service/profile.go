package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/phuslu/log"

	"inbot/internal/extract"
	"inbot/internal/model"
	"inbot/internal/repository"
	"inbot/internal/storage"
)

// AvatarInput describes an uploaded profile picture.
type AvatarInput struct {
	UserID   string
	Filename string
	Reader   io.Reader
}

// ProfileService defines the profile page use cases.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, userID, name, bio string) (*model.User, error)
	// UploadAvatar stores the image, points the profile at it and removes the previous one best-effort.
	UploadAvatar(ctx context.Context, in AvatarInput) (*model.User, error)
}

type profileService struct {
	store  storage.Storage
	users  repository.UserRepository
	logger *log.Logger
}

func NewProfileService(store storage.Storage, users repository.UserRepository, logger *log.Logger) ProfileService {
	return &profileService{store: store, users: users, logger: logger}
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *profileService) Update(ctx context.Context, userID, name, bio string) (*model.User, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.users.UpdateProfile(ctx, userID, name, strings.TrimSpace(bio))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, in AvatarInput) (*model.User, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	current, err := s.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: avatar must be an image, got %s", extract.ErrUnsupportedFileType, mt.String())
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if ext == "" {
		ext = mt.Extension()
	}
	key := path.Join("avatars", in.UserID, uuid.NewString()+ext)

	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: mt.String(),
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	updated, err := s.users.UpdateAvatar(ctx, in.UserID, s.store.PublicURL(key), key)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if current.AvatarPath != "" && current.AvatarPath != key {
		if err := s.store.Delete(ctx, current.AvatarPath); err != nil {
			s.logger.Warn().
				Str("component", "service").
				Str("event", "avatar_cleanup_failed").
				Str("storage_path", current.AvatarPath).
				Err(err).
				Msg("")
		}
	}
	return updated, nil
}
