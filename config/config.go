package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every runtime setting. It is built once in main and passed
// into the components that need it; nothing reads the environment after startup.
type Config struct {
	Port        string
	DatabaseURL string

	// JWT
	SecretKey          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// SMTP
	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string
	MailFromName string

	// Object storage for images
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	PublicImageURL string

	RedisURL string

	FrontendURL string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		SecretKey:          getenv("SECRET_KEY", "dev-secret-change-me"),
		AccessTokenExpiry:  time.Duration(getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenExpiry: time.Duration(getenvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,

		MailHost:     os.Getenv("MAIL_SERVER"),
		MailPort:     getenvInt("MAIL_PORT", 587),
		MailUsername: os.Getenv("MAIL_USERNAME"),
		MailPassword: os.Getenv("MAIL_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		MailFromName: getenv("MAIL_FROM_NAME", "Noosh Tuft"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getenv("MINIO_BUCKET", "noosh-images"),
		MinioUseSSL:    getenvBool("MINIO_USE_SSL", false),
		PublicImageURL: os.Getenv("PUBLIC_IMAGE_URL"),

		RedisURL: getenv("REDIS_URL", "redis://localhost:6379"),

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
