package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbot/internal/extract"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractCommand(t *testing.T) {
	t.Run("prints text", func(t *testing.T) {
		var out bytes.Buffer
		path := writeTemp(t, "notes.txt", "hello world")

		err := newApp(&out).Run([]string{"inbotctl", "extract", path})
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", out.String())
	})

	t.Run("stats", func(t *testing.T) {
		var out bytes.Buffer
		path := writeTemp(t, "long.txt", strings.Repeat("a", 7000))

		err := newApp(&out).Run([]string{"inbotctl", "extract", "--stats", path})
		require.NoError(t, err)
		assert.Equal(t, "characters: 7000\nwindows: 3\n", out.String())
	})

	t.Run("unsupported type", func(t *testing.T) {
		path := writeTemp(t, "slides.pptx", "PK")

		err := newApp(&bytes.Buffer{}).Run([]string{"inbotctl", "extract", path})
		assert.ErrorIs(t, err, extract.ErrUnsupportedFileType)
	})

	t.Run("missing argument", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}).Run([]string{"inbotctl", "extract"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one file")
	})

	t.Run("missing file", func(t *testing.T) {
		err := newApp(&bytes.Buffer{}).Run([]string{"inbotctl", "extract", filepath.Join(t.TempDir(), "nope.txt")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMigrateCommand_RequiresDatabaseConfig(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	err := newApp(&bytes.Buffer{}).Run([]string{"inbotctl", "migrate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database config")
}

func TestCommandsAreRegistered(t *testing.T) {
	app := newApp(&bytes.Buffer{})
	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"migrate", "extract"}, names)
}
