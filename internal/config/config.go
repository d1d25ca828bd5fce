package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Store     StoreConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Assistant AssistantConfig
	Geo       GeoConfig
	Documents DocumentsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	SeedDefaults   bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// StoreConfig selects the ledger backend: "memory" or "postgres".
type StoreConfig struct {
	Type string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

type StorageConfig struct {
	Type     string
	BasePath string
}

// AssistantConfig points at an OpenAI-compatible endpoint. The assistant is
// disabled when APIKey is empty.
type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (c AssistantConfig) Enabled() bool {
	return c.APIKey != ""
}

type GeoConfig struct {
	CaptureTimeout time.Duration
}

type DocumentsConfig struct {
	ExpiryScanInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using process environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "retail-hr"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		SeedDefaults:   getEnv("SEED_DEFAULTS", "true") == "true",
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "retail_hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
	}

	config.Store = StoreConfig{
		Type: getEnv("STORE_TYPE", "memory"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "12h"),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
	}

	assistantTimeout, err := getEnvDuration("ASSISTANT_TIMEOUT", "20s")
	if err != nil {
		return nil, err
	}
	config.Assistant = AssistantConfig{
		BaseURL: getEnv("ASSISTANT_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  getEnv("ASSISTANT_API_KEY", ""),
		Model:   getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
		Timeout: assistantTimeout,
	}

	geoTimeout, err := getEnvDuration("GEO_CAPTURE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	config.Geo = GeoConfig{CaptureTimeout: geoTimeout}

	scanInterval, err := getEnvDuration("DOCUMENT_EXPIRY_SCAN_INTERVAL", "24h")
	if err != nil {
		return nil, err
	}
	config.Documents = DocumentsConfig{ExpiryScanInterval: scanInterval}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch c.Store.Type {
	case "memory":
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORE_TYPE=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORE_TYPE: %s", c.Store.Type)
	}
	if c.Storage.Type != "local" {
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LogLevel onto slog levels, defaulting to info.
func (c AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	result := strings.Split(value, ",")
	for i := range result {
		result[i] = strings.TrimSpace(result[i])
	}
	return result
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
