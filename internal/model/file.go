package model

import "time"

// UncategorizedLabel is the folder name shown for files without a label.
const UncategorizedLabel = "Uncategorized"

// File is an uploaded document owned by one user.
// The embedding vector is write-only from the application's point of view, so only its presence is exposed.
type File struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	FileType     string    `json:"file_type"`
	ContentType  string    `json:"content_type"`
	StoragePath  string    `json:"storage_path"`
	URL          string    `json:"url"`
	Label        *string   `json:"label"`
	HasEmbedding bool      `json:"has_embedding"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Folder returns the label, or UncategorizedLabel when none is set.
func (f File) Folder() string {
	if f.Label == nil || *f.Label == "" {
		return UncategorizedLabel
	}
	return *f.Label
}
