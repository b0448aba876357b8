package postgres

import (
	"context"
	"database/sql"

	"github.com/pgvector/pgvector-go"

	"inbot/internal/model"
	"inbot/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

const fileColumns = `id, user_id, name, size, file_type, content_type, storage_path, url, label, embedding IS NOT NULL, uploaded_at`

func scanFile(s rowScanner) (*model.File, error) {
	var f model.File
	if err := s.Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Size,
		&f.FileType,
		&f.ContentType,
		&f.StoragePath,
		&f.URL,
		&f.Label,
		&f.HasEmbedding,
		&f.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (id, user_id, name, size, file_type, content_type, storage_path, url, label, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q,
		f.ID,
		f.UserID,
		f.Name,
		f.Size,
		f.FileType,
		f.ContentType,
		f.StoragePath,
		f.URL,
		f.Label,
		f.UploadedAt,
	))
}

func (r *FilePostgres) FindByID(ctx context.Context, userID, id string) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID))
}

// fileFilter is shared by the count and the page query so both see the same rows.
// $2 search text, $3 whether to filter by label, $4 label ('' selects NULL).
const fileFilter = `
		WHERE user_id = $1
		  AND ($2::text = '' OR strpos(lower(name), lower($2::text)) > 0)
		  AND (NOT $3::boolean OR ($4::text = '' AND label IS NULL) OR label = $4::text)`

func (r *FilePostgres) List(ctx context.Context, userID string, fq repository.FileQuery) (*repository.PageResult[model.File], error) {
	hasLabel := fq.Label != nil
	label := ""
	if hasLabel {
		label = *fq.Label
	}

	const qCount = `SELECT COUNT(*) FROM files` + fileFilter
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID, fq.Search, hasLabel, label).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + fileColumns + ` FROM files` + fileFilter + `
		ORDER BY CASE WHEN $5::text = 'name' THEN lower(name) END ASC, uploaded_at DESC, id DESC
		LIMIT $6 OFFSET $7`
	rows, err := r.db.QueryContext(ctx, qList, userID, fq.Search, hasLabel, label, fq.Sort, fq.Limit, fq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := collectFiles(rows)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.File]{
		Items: items,
		Total: total,
	}, nil
}

func (r *FilePostgres) ListAll(ctx context.Context, userID string) ([]model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE user_id = $1 ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

func collectFiles(rows *sql.Rows) ([]model.File, error) {
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FilePostgres) UpdateEmbedding(ctx context.Context, userID, id string, embedding []float32) error {
	const q = `UPDATE files SET embedding = $3 WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID, pgvector.NewVector(embedding))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *FilePostgres) Rename(ctx context.Context, userID, id, name string) (*model.File, error) {
	const q = `UPDATE files SET name = $3 WHERE id = $1 AND user_id = $2 RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID, name))
}

func (r *FilePostgres) UpdateLabel(ctx context.Context, userID, id string, label *string) (*model.File, error) {
	const q = `UPDATE files SET label = $3 WHERE id = $1 AND user_id = $2 RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID, label))
}

func (r *FilePostgres) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM files WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps "nothing matched" to sql.ErrNoRows.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
