package repository

import (
	"context"

	"inbot/internal/model"
)

// File list orderings.
const (
	SortUploadedAt = "uploaded_at"
	SortName       = "name"
)

// FileQuery filters a user's files.
type FileQuery struct {
	PageQuery
	// Search matches a case-insensitive substring of the name.
	Search string
	// Label filters by folder when non-nil; an empty label selects unlabelled files.
	Label *string
	// Sort is SortUploadedAt (newest first) or SortName (A-Z).
	Sort string
}

// FileRepository persists file metadata. Every method is scoped to the owning user.
type FileRepository interface {
	Create(ctx context.Context, f *model.File) (*model.File, error)
	FindByID(ctx context.Context, userID, id string) (*model.File, error)
	List(ctx context.Context, userID string, q FileQuery) (*PageResult[model.File], error)
	// ListAll returns every file of the user, newest first.
	ListAll(ctx context.Context, userID string) ([]model.File, error)
	UpdateEmbedding(ctx context.Context, userID, id string, embedding []float32) error
	Rename(ctx context.Context, userID, id, name string) (*model.File, error)
	// UpdateLabel sets the folder; nil clears it.
	UpdateLabel(ctx context.Context, userID, id string, label *string) (*model.File, error)
	Delete(ctx context.Context, userID, id string) error
}
