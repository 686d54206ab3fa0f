package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	MigrationsDir string
	CORSOrigin    string

	// Admin identity and session lifetime
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration

	// Redis - optional; sessions fall back to process memory when unset
	RedisURL string

	// S3-compatible object storage for uploaded assets
	S3Endpoint        string
	S3AccessKey       string
	S3SecretKey       string
	S3UseSSL          bool
	LogoBucket        string
	BillboardBucket   string
	AssetBaseURL      string
	LogoMaxBytes      int64
	BillboardMaxBytes int64

	// SMTP - empty by default, contact form disabled if not configured
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	ContactTo    string
}

func Load() Config {
	return Config{
		Addr:          getenv("API_ADDR", ":8686"),
		DatabaseURL:   getenv("DATABASE_URL", ""),
		MigrationsDir: getenv("SP_MIGRATIONS_DIR", "./db/migrations"),
		CORSOrigin:    getenv("SP_CORS_ORIGIN", "*"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SessionTTL:    time.Duration(getenvInt("SP_SESSION_TTL_SECONDS", 86400)) * time.Second,

		RedisURL: getenv("REDIS_URL", ""),

		S3Endpoint:        getenv("S3_ENDPOINT", ""),
		S3AccessKey:       getenv("S3_ACCESS_KEY", ""),
		S3SecretKey:       getenv("S3_SECRET_KEY", ""),
		S3UseSSL:          getenv("S3_USE_SSL", "true") == "true",
		LogoBucket:        getenv("SP_LOGO_BUCKET", "casino-assets"),
		BillboardBucket:   getenv("SP_BILLBOARD_BUCKET", "boards"),
		AssetBaseURL:      getenv("SP_ASSET_BASE_URL", ""),
		LogoMaxBytes:      int64(getenvInt("SP_LOGO_MAX_BYTES", 5*1024*1024)),
		BillboardMaxBytes: int64(getenvInt("SP_BILLBOARD_MAX_BYTES", 10*1024*1024)),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUsername: getenv("SMTP_USERNAME", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", ""),
		SMTPFromName: getenv("SMTP_FROM_NAME", "Slots Planet"),
		ContactTo:    getenv("SP_CONTACT_TO", ""),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
