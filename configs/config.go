package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
}

func Config(key string) string {
	loadEnv()
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

// Settings is the typed view of the environment read once at startup.
type Settings struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	CloudinaryURL   string
	BrevoAPIKey     string
	EmailSender     string
	EmailSenderName string
	CORSOrigins     string
	PurgeSchedule   string
	DigestSchedule  string
	CookieSecure    bool
}

func Load() *Settings {
	s := &Settings{
		Port:            ConfigOr("PORT", "3000"),
		DatabaseURL:     Config("DATABASE_URL"),
		JWTSecret:       Config("JWT_SECRET"),
		CloudinaryURL:   Config("CLOUDINARY_URL"),
		BrevoAPIKey:     Config("BREVO_API_KEY"),
		EmailSender:     Config("EMAIL_SENDER"),
		EmailSenderName: Config("EMAIL_SENDER_NAME"),
		CORSOrigins:     ConfigOr("CORS_ORIGINS", "*"),
		PurgeSchedule:   ConfigOr("PURGE_SCHEDULE", "@daily"),
		DigestSchedule:  ConfigOr("DIGEST_SCHEDULE", "@weekly"),
		CookieSecure:    strings.EqualFold(Config("COOKIE_SECURE"), "true"),
	}

	if s.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL is not set")
	}
	return s
}

// Validate reports settings the server cannot run without.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.JWTSecret) == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}
