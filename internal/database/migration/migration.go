package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/phuslu/log"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_extension_vector",
		SQL:  `CREATE EXTENSION IF NOT EXISTS vector;`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT        NOT NULL,
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  bio           TEXT        NOT NULL DEFAULT '',
  avatar_url    TEXT        NOT NULL DEFAULT '',
  avatar_path   TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_files",
		SQL: `CREATE TABLE IF NOT EXISTS files (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id      UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  name         TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  file_type    TEXT        NOT NULL,
  content_type TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  url          TEXT        NOT NULL,
  label        TEXT,
  embedding    vector,
  uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_files_user_uploaded_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_files_user_uploaded_at ON files (user_id, uploaded_at DESC);`,
	},
	{
		Name: "create_table_conversations",
		SQL: `CREATE TABLE IF NOT EXISTS conversations (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id           UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  file_id           UUID        REFERENCES files (id) ON DELETE SET NULL,
  conversation_name TEXT        NOT NULL,
  document_content  TEXT        NOT NULL DEFAULT '',
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_conversations_user_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_conversations_user_created_at ON conversations (user_id, created_at DESC);`,
	},
	{
		Name: "create_table_conversation_messages",
		SQL: `CREATE TABLE IF NOT EXISTS conversation_messages (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  conversation_id UUID        NOT NULL REFERENCES conversations (id) ON DELETE CASCADE,
  role            TEXT        NOT NULL CHECK (role IN ('user', 'bot')),
  message         TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_conversation_messages_conversation",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_conversation_messages_conversation ON conversation_messages (conversation_id, created_at);`,
	},
	{
		Name: "create_table_file_translations",
		SQL: `CREATE TABLE IF NOT EXISTS file_translations (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  file_id             UUID        NOT NULL REFERENCES files (id) ON DELETE CASCADE,
  translated_language TEXT        NOT NULL,
  translation         TEXT        NOT NULL,
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (file_id, translated_language)
);`,
	},
}

// EnsureMigrated runs every schema step unless the sentinel table already exists.
// The last table created is the sentinel, so a partially applied schema is retried on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *log.Logger, dbHost string) error {
	start := time.Now()

	logger.Info().
		Str("component", "database").
		Str("event", "db_migration_check").
		Str("status", "starting").
		Str("db_host", dbHost).
		Msg("")

	var exists bool
	query := "SELECT to_regclass('public.file_translations') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logger.Error().
			Str("component", "database").
			Str("event", "db_migration_failed").
			Str("status", "error").
			Str("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)).
			Str("db_host", dbHost).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info().
			Str("component", "database").
			Str("event", "db_migration_skip").
			Str("status", "success").
			Str("db_host", dbHost).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	return Run(ctx, db, logger, dbHost)
}

// Run applies every step in order. All steps are idempotent.
func Run(ctx context.Context, db *sql.DB, logger *log.Logger, dbHost string) error {
	start := time.Now()

	logger.Info().
		Str("component", "database").
		Str("event", "db_migration_start").
		Str("status", "in_progress").
		Str("db_host", dbHost).
		Msg("")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error().
				Str("component", "database").
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Str("error_message", err.Error()).
				Str("db_host", dbHost).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info().
			Str("component", "database").
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Str("db_host", dbHost).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("")
	}

	logger.Info().
		Str("component", "database").
		Str("event", "db_migration_success").
		Str("status", "success").
		Str("db_host", dbHost).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("")

	return nil
}
