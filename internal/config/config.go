package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Storage   StorageConfig
	S3        S3Config
	Upload    UploadConfig
	Log       LogConfig
	LLM       LLMConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Email     EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig selects and configures the multimodal model used for document analysis.
type LLMConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxTokens    int    `mapstructure:"max_tokens"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// StorageConfig selects the backend that holds uploaded files.
type StorageConfig struct {
	Backend       string `mapstructure:"backend"`
	LocalRoot     string `mapstructure:"local_root"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// UploadConfig bounds what the import pipeline accepts.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig holds per-user request budgets for expensive endpoints.
type RateLimitConfig struct {
	Backend      string        `mapstructure:"backend"`
	UploadLimit  int           `mapstructure:"upload_limit"`
	ProcessLimit int           `mapstructure:"process_limit"`
	Window       time.Duration `mapstructure:"window"`
}

// RedisConfig holds connection settings for the shared rate limit store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration from environment variables with the PETVAULT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PETVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "petvault")
	v.SetDefault("db.password", "petvault_secret")
	v.SetDefault("db.name", "petvault_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "petvault")

	// Storage defaults
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local_root", "./data/uploads")
	v.SetDefault("storage.public_base_url", "http://localhost:8080")
	v.SetDefault("storage.presign_expiry", 3600)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "petvault-uploads")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("upload.max_file_size_mb", 20)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// LLM defaults
	v.SetDefault("llm.provider", "claude")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.default_model", "")
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("llm.max_tokens", 4096)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Rate limit defaults
	v.SetDefault("rate_limit.backend", "memory")
	v.SetDefault("rate_limit.upload_limit", 20)
	v.SetDefault("rate_limit.process_limit", 10)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@petvault.app")
	v.SetDefault("email.from_name", "PetVault")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "PETVAULT_SERVER_PORT",
		"server.read_timeout":      "PETVAULT_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "PETVAULT_SERVER_WRITE_TIMEOUT",
		"server.environment":       "PETVAULT_SERVER_ENVIRONMENT",
		"db.host":                  "PETVAULT_DB_HOST",
		"db.port":                  "PETVAULT_DB_PORT",
		"db.user":                  "PETVAULT_DB_USER",
		"db.password":              "PETVAULT_DB_PASSWORD",
		"db.name":                  "PETVAULT_DB_NAME",
		"db.sslmode":               "PETVAULT_DB_SSLMODE",
		"db.max_open":              "PETVAULT_DB_MAX_OPEN",
		"db.max_idle":              "PETVAULT_DB_MAX_IDLE",
		"jwt.secret":               "PETVAULT_JWT_SECRET",
		"jwt.access_expiry":        "PETVAULT_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "PETVAULT_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "PETVAULT_JWT_ISSUER",
		"storage.backend":          "PETVAULT_STORAGE_BACKEND",
		"storage.local_root":       "PETVAULT_STORAGE_LOCAL_ROOT",
		"storage.public_base_url":  "PETVAULT_STORAGE_PUBLIC_BASE_URL",
		"storage.presign_expiry":   "PETVAULT_STORAGE_PRESIGN_EXPIRY",
		"s3.region":                "PETVAULT_S3_REGION",
		"s3.bucket":                "PETVAULT_S3_BUCKET",
		"s3.endpoint":              "PETVAULT_S3_ENDPOINT",
		"s3.access_key":            "PETVAULT_S3_ACCESS_KEY",
		"s3.secret_key":            "PETVAULT_S3_SECRET_KEY",
		"upload.max_file_size_mb":  "PETVAULT_UPLOAD_MAX_FILE_SIZE_MB",
		"log.level":                "PETVAULT_LOG_LEVEL",
		"log.format":               "PETVAULT_LOG_FORMAT",
		"llm.provider":             "PETVAULT_LLM_PROVIDER",
		"llm.api_key":              "PETVAULT_LLM_API_KEY",
		"llm.default_model":        "PETVAULT_LLM_DEFAULT_MODEL",
		"llm.timeout_secs":         "PETVAULT_LLM_TIMEOUT_SECS",
		"llm.max_tokens":           "PETVAULT_LLM_MAX_TOKENS",
		"cors.allowed_origins":     "PETVAULT_CORS_ALLOWED_ORIGINS",
		"rate_limit.backend":       "PETVAULT_RATE_LIMIT_BACKEND",
		"rate_limit.upload_limit":  "PETVAULT_RATE_LIMIT_UPLOAD_LIMIT",
		"rate_limit.process_limit": "PETVAULT_RATE_LIMIT_PROCESS_LIMIT",
		"rate_limit.window":        "PETVAULT_RATE_LIMIT_WINDOW",
		"redis.addr":               "PETVAULT_REDIS_ADDR",
		"redis.password":           "PETVAULT_REDIS_PASSWORD",
		"redis.db":                 "PETVAULT_REDIS_DB",
		"email.provider":           "PETVAULT_EMAIL_PROVIDER",
		"email.region":             "PETVAULT_EMAIL_REGION",
		"email.from_address":       "PETVAULT_EMAIL_FROM_ADDRESS",
		"email.from_name":          "PETVAULT_EMAIL_FROM_NAME",
		"email.frontend_url":       "PETVAULT_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if PETVAULT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PETVAULT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Storage = StorageConfig{
		Backend:       strings.ToLower(v.GetString("storage.backend")),
		LocalRoot:     v.GetString("storage.local_root"),
		PublicBaseURL: strings.TrimRight(v.GetString("storage.public_base_url"), "/"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.LLM = LLMConfig{
		Provider:     v.GetString("llm.provider"),
		APIKey:       v.GetString("llm.api_key"),
		DefaultModel: v.GetString("llm.default_model"),
		TimeoutSecs:  v.GetInt("llm.timeout_secs"),
		MaxTokens:    v.GetInt("llm.max_tokens"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.RateLimit = RateLimitConfig{
		Backend:      strings.ToLower(v.GetString("rate_limit.backend")),
		UploadLimit:  v.GetInt("rate_limit.upload_limit"),
		ProcessLimit: v.GetInt("rate_limit.process_limit"),
		Window:       v.GetDuration("rate_limit.window"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	if cfg.Storage.Backend != "local" && cfg.Storage.Backend != "s3" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.RateLimit.Backend != "memory" && cfg.RateLimit.Backend != "redis" {
		return nil, fmt.Errorf("unknown rate limit backend %q", cfg.RateLimit.Backend)
	}

	return cfg, nil
}
