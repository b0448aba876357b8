package postgres

import (
	"context"
	"database/sql"

	"inbot/internal/model"
	"inbot/internal/repository"
)

// TranslationPostgres is a PostgreSQL implementation of repository.TranslationRepository.
type TranslationPostgres struct {
	db *sql.DB
}

// NewTranslationPostgres creates a new TranslationPostgres repository.
func NewTranslationPostgres(db *sql.DB) *TranslationPostgres {
	return &TranslationPostgres{db: db}
}

var _ repository.TranslationRepository = (*TranslationPostgres)(nil)

func (r *TranslationPostgres) Upsert(ctx context.Context, t *model.FileTranslation) (*model.FileTranslation, error) {
	const q = `
		INSERT INTO file_translations (id, file_id, translated_language, translation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (file_id, translated_language) DO UPDATE
		SET translation = EXCLUDED.translation, updated_at = EXCLUDED.updated_at
		RETURNING id, file_id, translated_language, translation, created_at, updated_at
	`
	var out model.FileTranslation
	if err := r.db.QueryRowContext(ctx, q, t.ID, t.FileID, t.Language, t.Translation, t.UpdatedAt).Scan(
		&out.ID,
		&out.FileID,
		&out.Language,
		&out.Translation,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	out.FileName = t.FileName
	return &out, nil
}

const translationSelect = `
		SELECT t.id, t.file_id, f.name, t.translated_language, t.translation, t.created_at, t.updated_at
		FROM file_translations t
		JOIN files f ON f.id = t.file_id`

func scanTranslation(s rowScanner) (*model.FileTranslation, error) {
	var t model.FileTranslation
	if err := s.Scan(&t.ID, &t.FileID, &t.FileName, &t.Language, &t.Translation, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TranslationPostgres) FindByID(ctx context.Context, userID, id string) (*model.FileTranslation, error) {
	const q = translationSelect + `
		WHERE t.id = $1 AND f.user_id = $2`
	return scanTranslation(r.db.QueryRowContext(ctx, q, id, userID))
}

func (r *TranslationPostgres) List(ctx context.Context, userID string) ([]model.FileTranslation, error) {
	const q = translationSelect + `
		WHERE f.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FileTranslation, 0)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TranslationPostgres) Delete(ctx context.Context, userID, id string) error {
	const q = `
		DELETE FROM file_translations t
		USING files f
		WHERE t.file_id = f.id AND t.id = $1 AND f.user_id = $2
	`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
