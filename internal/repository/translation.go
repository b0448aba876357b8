package repository

import (
	"context"

	"inbot/internal/model"
)

// TranslationRepository persists saved translations. Ownership is checked through the parent file.
type TranslationRepository interface {
	// Upsert inserts or overwrites the translation keyed on (file id, language).
	Upsert(ctx context.Context, t *model.FileTranslation) (*model.FileTranslation, error)
	FindByID(ctx context.Context, userID, id string) (*model.FileTranslation, error)
	// List returns the user's translations by creation time, newest first; re-saving does not reorder.
	List(ctx context.Context, userID string) ([]model.FileTranslation, error)
	// Delete yields sql.ErrNoRows when nothing matched.
	Delete(ctx context.Context, userID, id string) error
}
