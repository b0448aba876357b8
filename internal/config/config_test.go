package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("EMBEDDING_MAX_CHARS", "4000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 4000, cfg.OpenAI.EmbeddingMaxChars)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.ChatModel)
	assert.Equal(t, "text-embedding-ada-002", cfg.OpenAI.EmbeddingModel)
}

func TestLoad_TOMLFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
port = "9090"

[database]
host = "file-host"
user = "file-user"
name = "inbot"

[openai]
chat_model = "gpt-4o-mini"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_USER", "env-user")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "file-host", cfg.Database.Host)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "inbot", cfg.Database.Name)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.ChatModel)
	// untouched keys keep their defaults
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 8000, cfg.OpenAI.EmbeddingMaxChars)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = "), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		cfg := defaultConfig()
		cfg.Database.Host = "localhost"
		cfg.Database.User = "inbot"
		cfg.Database.Name = "inbot"
		cfg.MinIO = MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "files"}
		cfg.OpenAI.APIKey = "sk-test"
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing keys are all reported", func(t *testing.T) {
		cfg := valid()
		cfg.OpenAI.APIKey = ""
		cfg.Auth.JWTSecret = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("non positive embedding cap", func(t *testing.T) {
		cfg := valid()
		cfg.OpenAI.EmbeddingMaxChars = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := valid()
		cfg.Timezone = "Mars/Olympus"
		assert.Error(t, cfg.Validate())
	})
}

func TestLocationAndTokenTTL(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())

	cfg.Timezone = "Mars/Olympus"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
