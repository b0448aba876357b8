package model

import "time"

// FileTranslation is the saved translation of a file into one language.
// (FileID, Language) is unique; saving again overwrites Translation.
type FileTranslation struct {
	ID          string    `json:"id"`
	FileID      string    `json:"file_id"`
	FileName    string    `json:"file_name,omitempty"`
	Language    string    `json:"translated_language"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
