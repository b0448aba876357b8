package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `toml:"host"`
	Port               string `toml:"port"`
	User               string `toml:"user"`
	Password           string `toml:"password"`
	Name               string `toml:"name"`
	SSLMode            string `toml:"sslmode"`
	MaxOpenConns       int    `toml:"max_open_conns"`
	MaxIdleConns       int    `toml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `toml:"conn_max_lifetime_sec"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	UseSSL    bool   `toml:"use_ssl"`
}

// RedisConfig holds the connection used for session revocation.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// OpenAIConfig holds settings for the chat completion and embedding endpoints.
type OpenAIConfig struct {
	BaseURL           string `toml:"base_url"`
	APIKey            string `toml:"api_key"`
	ChatModel         string `toml:"chat_model"`
	EmbeddingModel    string `toml:"embedding_model"`
	EmbeddingMaxChars int    `toml:"embedding_max_chars"`
	TimeoutSec        int    `toml:"timeout_sec"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	JWTExpireMinute int    `toml:"jwt_expire_minute"`
}

// AppConfig is the centralized configuration struct for the application.
// Values come from defaults, then an optional TOML file, then environment variables.
type AppConfig struct {
	AppHost     string         `toml:"app_host"`
	Port        string         `toml:"port"`
	Timezone    string         `toml:"timezone"`
	LogLevel    string         `toml:"log_level"`
	MaxUploadMB int            `toml:"max_upload_mb"`
	Database    DatabaseConfig `toml:"database"`
	MinIO       MinIOConfig    `toml:"minio"`
	Redis       RedisConfig    `toml:"redis"`
	OpenAI      OpenAIConfig   `toml:"openai"`
	Auth        AuthConfig     `toml:"auth"`
}

// Load reads configuration.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// The TOML file named by CONFIG_FILE (default config.toml) is optional; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg := defaultConfig()

	path := getEnv("CONFIG_FILE", "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		AppHost:     "localhost:8080",
		Port:        "8080",
		Timezone:    "UTC",
		LogLevel:    "info",
		MaxUploadMB: 20,
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		OpenAI: OpenAIConfig{
			BaseURL:           "https://api.openai.com/v1",
			ChatModel:         "gpt-3.5-turbo",
			EmbeddingModel:    "text-embedding-ada-002",
			EmbeddingMaxChars: 8000,
			TimeoutSec:        60,
		},
		Auth: AuthConfig{
			JWTExpireMinute: 1440,
		},
	}
}

func overrideByEnv(cfg *AppConfig) {
	cfg.AppHost = getEnv("APP_HOST", cfg.AppHost)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Timezone = getEnv("APP_TIMEZONE", cfg.Timezone)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxUploadMB = getEnvInt("MAX_UPLOAD_MB", cfg.MaxUploadMB)

	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.ConnMaxLifetimeSec = getEnvInt("DB_CONN_MAX_LIFETIME_SEC", cfg.Database.ConnMaxLifetimeSec)

	cfg.MinIO.Endpoint = getEnv("MINIO_ENDPOINT", cfg.MinIO.Endpoint)
	cfg.MinIO.AccessKey = getEnv("MINIO_ACCESS_KEY", cfg.MinIO.AccessKey)
	cfg.MinIO.SecretKey = getEnv("MINIO_SECRET_KEY", cfg.MinIO.SecretKey)
	cfg.MinIO.Bucket = getEnv("MINIO_BUCKET", cfg.MinIO.Bucket)
	cfg.MinIO.UseSSL = getEnvBool("MINIO_USE_SSL", cfg.MinIO.UseSSL)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.ChatModel = getEnv("OPENAI_CHAT_MODEL", cfg.OpenAI.ChatModel)
	cfg.OpenAI.EmbeddingModel = getEnv("OPENAI_EMBEDDING_MODEL", cfg.OpenAI.EmbeddingModel)
	cfg.OpenAI.EmbeddingMaxChars = getEnvInt("EMBEDDING_MAX_CHARS", cfg.OpenAI.EmbeddingMaxChars)
	cfg.OpenAI.TimeoutSec = getEnvInt("OPENAI_TIMEOUT_SEC", cfg.OpenAI.TimeoutSec)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTExpireMinute = getEnvInt("JWT_EXPIRE_MINUTE", cfg.Auth.JWTExpireMinute)
}

// Validate reports every missing required setting at once so startup fails fast.
func (c *AppConfig) Validate() error {
	required := []struct{ key, value string }{
		{"DB_HOST", c.Database.Host},
		{"DB_USER", c.Database.User},
		{"DB_NAME", c.Database.Name},
		{"MINIO_ENDPOINT", c.MinIO.Endpoint},
		{"MINIO_ACCESS_KEY", c.MinIO.AccessKey},
		{"MINIO_SECRET_KEY", c.MinIO.SecretKey},
		{"MINIO_BUCKET", c.MinIO.Bucket},
		{"OPENAI_API_KEY", c.OpenAI.APIKey},
		{"JWT_SECRET", c.Auth.JWTSecret},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.OpenAI.EmbeddingMaxChars <= 0 {
		return errors.New("EMBEDDING_MAX_CHARS must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TokenTTL is how long issued access tokens stay valid.
func (c *AppConfig) TokenTTL() time.Duration {
	return time.Duration(c.Auth.JWTExpireMinute) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
