package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store   StoreConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Export  ExportConfig
	Persist PersistConfig
	Preview PreviewConfig
	Relay   RelayConfig
	School  SchoolConfig
}

// StoreConfig points at the embedded collection store.
type StoreConfig struct {
	Path       string
	QuotaBytes int64
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig controls rendered document storage and download links.
type ExportConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
	CleanupInterval time.Duration
}

// PersistConfig tunes the fire-and-forget save pipeline. Zero retries means
// a failed save is logged and dropped.
type PersistConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	BufferSize int
}

// PreviewConfig governs caching of composed documents and rendered PDFs.
type PreviewConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// RelayConfig describes the external messaging handoff.
type RelayConfig struct {
	CountryCode  string
	LocalDigits  int
	DeepLinkBase string
}

// SchoolConfig carries the fixed letterhead identity lines.
type SchoolConfig struct {
	Name        string
	Directorate string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	quota := v.GetInt64("STORE_QUOTA_BYTES")
	if quota <= 0 {
		quota = 50 * 1024 * 1024
	}
	cfg.Store = StoreConfig{
		Path:       v.GetString("STORE_PATH"),
		QuotaBytes: quota,
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{
		StorageDir:      v.GetString("EXPORT_STORAGE_DIR"),
		SignedURLSecret: v.GetString("EXPORT_SIGNED_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("EXPORT_SIGNED_URL_TTL"), 30*time.Minute),
		CleanupInterval: parseDuration(v.GetString("EXPORT_CLEANUP_INTERVAL"), time.Hour),
	}

	cfg.Persist = PersistConfig{
		MaxRetries: v.GetInt("PERSIST_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("PERSIST_RETRY_DELAY"), time.Second),
		BufferSize: v.GetInt("PERSIST_BUFFER_SIZE"),
	}

	cfg.Preview = PreviewConfig{
		CacheEnabled: v.GetBool("ENABLE_PREVIEW_CACHE"),
		CacheTTL:     parseDuration(v.GetString("PREVIEW_CACHE_TTL"), 10*time.Minute),
	}

	cfg.Relay = RelayConfig{
		CountryCode:  v.GetString("RELAY_COUNTRY_CODE"),
		LocalDigits:  v.GetInt("RELAY_LOCAL_DIGITS"),
		DeepLinkBase: v.GetString("RELAY_DEEP_LINK_BASE"),
	}

	cfg.School = SchoolConfig{
		Name:        v.GetString("SCHOOL_NAME"),
		Directorate: v.GetString("SCHOOL_DIRECTORATE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_PATH", "./data/docgen.db")
	v.SetDefault("STORE_QUOTA_BYTES", 50*1024*1024)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("EXPORT_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORT_SIGNED_URL_SECRET", "dev_export_secret")
	v.SetDefault("EXPORT_SIGNED_URL_TTL", "30m")
	v.SetDefault("EXPORT_CLEANUP_INTERVAL", "1h")

	v.SetDefault("PERSIST_MAX_RETRIES", 0)
	v.SetDefault("PERSIST_RETRY_DELAY", "1s")
	v.SetDefault("PERSIST_BUFFER_SIZE", 16)

	v.SetDefault("ENABLE_PREVIEW_CACHE", false)
	v.SetDefault("PREVIEW_CACHE_TTL", "10m")

	v.SetDefault("RELAY_COUNTRY_CODE", "968")
	v.SetDefault("RELAY_LOCAL_DIGITS", 8)
	v.SetDefault("RELAY_DEEP_LINK_BASE", "https://api.whatsapp.com/send")

	v.SetDefault("SCHOOL_NAME", "مدرسة الإبداع للبنين (5-8)")
	v.SetDefault("SCHOOL_DIRECTORATE", "المديرية العامة للتعليم بمحافظة شمال الباطنة")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
