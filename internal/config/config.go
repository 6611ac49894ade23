package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port            string
	StoreDriver     string
	DatabaseURL     string
	AutoMigrate     bool
	SeedCatalog     bool
	JWTSecret       string
	AccessTokenTTL  time.Duration
	AdminEmails     []string
	AllowOrigins    []string
	LogLevel        string
	LogFormat       string
	LogstashTCPAddr string

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketCatalog string
	MinIOPublicURL     string

	ImageMaxBytes     int64
	ImageMaxDimension int
}

// StorageEnabled reports whether catalog image uploads have an object store to write to.
func (c Config) StorageEnabled() bool {
	return c.MinIOEndpoint != ""
}

// Load reads the process environment (and a .env file when present). Every missing or
// malformed required key is reported in the returned error.
func Load() (Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	var problems []string

	cfg := Config{
		Port:               getenv("PORT", "8080"),
		StoreDriver:        strings.ToLower(getenv("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL:        getenv("DATABASE_URL", ""),
		AutoMigrate:        getenv("AUTO_MIGRATE", "true") == "true",
		SeedCatalog:        getenv("SEED_CATALOG", "true") == "true",
		JWTSecret:          getenv("JWT_SECRET", ""),
		AdminEmails:        splitList(getenv("ADMIN_EMAILS", "")),
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
		LogstashTCPAddr:    getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:      getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketCatalog: getenv("MINIO_BUCKET_CATALOG", "travel-catalog"),
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "missing env: DATABASE_URL")
		}
	case StoreDriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid STORE_DRIVER %q", cfg.StoreDriver))
	}

	if cfg.JWTSecret == "" {
		problems = append(problems, "missing env: JWT_SECRET")
	}

	ttl, err := time.ParseDuration(getenv("ACCESS_TOKEN_TTL", "30m"))
	if err != nil || ttl <= 0 {
		problems = append(problems, "invalid ACCESS_TOKEN_TTL")
	}
	cfg.AccessTokenTTL = ttl

	cfg.ImageMaxBytes = 5 * 1024 * 1024
	if v, err := strconv.ParseInt(getenv("IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		cfg.ImageMaxBytes = v
	}
	cfg.ImageMaxDimension = 4096
	if v, err := strconv.Atoi(getenv("IMAGE_MAX_DIMENSION", "4096")); err == nil && v > 0 {
		cfg.ImageMaxDimension = v
	}

	if cfg.MinIOEndpoint != "" && (cfg.MinIOAccessKey == "" || cfg.MinIOSecretKey == "") {
		problems = append(problems, "MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}

	if len(problems) > 0 {
		return cfg, errors.New(strings.Join(problems, "; "))
	}
	return cfg, nil
}

func splitAndTrim(input string) []string {
	out := splitList(input)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func splitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
