// Package config loads the immutable application configuration once at
// startup. Collaborators receive the struct explicitly; nothing reads the
// environment after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// JWT holds token signing settings.
type JWT struct {
	Secret string
	Expiry time.Duration
}

// Mail holds SMTP settings for the contact-form notification.
type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Config is the full application configuration.
type Config struct {
	Port              string
	DatabaseURL       string
	UploadDir         string
	AllowedExtensions []string
	AllowedOrigins    []string
	JWT               JWT
	Mail              Mail
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getenv("APP_PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		UploadDir:         getenv("UPLOAD_DIR", "./uploads"),
		AllowedExtensions: splitList(getenv("ALLOWED_EXTENSIONS", "jpg,jpeg,png,gif,webp")),
		AllowedOrigins:    splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
		JWT: JWT{
			Secret: os.Getenv("JWT_SECRET"),
			Expiry: 24 * time.Hour,
		},
		Mail: Mail{
			Host:     getenv("MAIL_HOST", "localhost"),
			Port:     587,
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			To:       os.Getenv("MAIL_TO"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %q", v)
		}
		cfg.JWT.Expiry = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("MAIL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAIL_PORT: %q", v)
		}
		cfg.Mail.Port = port
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
