package config

import (
	"os"
	"strconv"
	"time"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
	PingTimeout time.Duration
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds the signing parameters for bearer tokens.
type AuthConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// IdentityConfig points at the identity service used for account lookups.
type IdentityConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level    string
	JSON     bool
	File     string
	MaxSize  int // megabytes before rotation
	MaxAge   int // days to retain rotated files
	Backups  int
	Compress bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	ServiceName string
	Mongo       MongoConfig
	MinIO       MinIOConfig
	Auth        AuthConfig
	Identity    IdentityConfig
	Log         LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"), // default only for non-sensitive value
		ServiceName: getEnv("SERVICE_NAME", "propapi"),
		Mongo: MongoConfig{
			URI:         getEnv("MONGO_URI", ""),
			Database:    getEnv("MONGO_DATABASE", "propapi"),
			MaxPoolSize: uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize: uint64(getEnvInt("MONGO_MIN_POOL_SIZE", 0)),
			PingTimeout: getEnvDuration("MONGO_PING_TIMEOUT", 5*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			Secret: getEnv("AUTH_SECRET", ""),
			Issuer: getEnv("AUTH_ISSUER", "propapi"),
			TTL:    getEnvDuration("AUTH_TTL", 24*time.Hour),
		},
		Identity: IdentityConfig{
			BaseURL: getEnv("IDENTITY_BASE_URL", ""),
			APIKey:  getEnv("IDENTITY_API_KEY", ""),
			Timeout: getEnvDuration("IDENTITY_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			JSON:     getEnvBool("LOG_JSON", true),
			File:     getEnv("LOG_FILE", ""),
			MaxSize:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxAge:   getEnvInt("LOG_MAX_AGE_DAYS", 28),
			Backups:  getEnvInt("LOG_MAX_BACKUPS", 3),
			Compress: getEnvBool("LOG_COMPRESS", true),
		},
	}
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
