package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pynappo/Clark/internal/model"
)

// Config collects every environment knob the app reads. Values are read
// once at startup; missing optional settings fall back to dev defaults.
type Config struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs session tokens, ServerSecret keys the sealed
	// registration tokens. They may be the same value but do not have
	// to be.
	JWTSecret    string
	ServerSecret string

	SessionTTL      time.Duration
	RegistrationTTL time.Duration

	// BaseURL is the public origin used to build verification links.
	BaseURL string

	// DefaultAccessLevel is the tier granted to a freshly verified
	// account.
	DefaultAccessLevel model.AccessLevel

	MailFrom   string
	CleezyURL  string
	SpeakerURL string
}

func Load() Config {
	return Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        getenv("DATABASE_URL", "postgres://localhost:5432/clark"),
		JWTSecret:          getenv("JWT_SECRET", "dev-secret-please-change"),
		ServerSecret:       getenv("SERVER_SECRET", "dev-secret-please-change"),
		SessionTTL:         getduration("SESSION_TTL", 24*time.Hour),
		RegistrationTTL:    getduration("REGISTRATION_TTL", 30*time.Minute),
		BaseURL:            getenv("BASE_URL", "http://localhost:8080"),
		DefaultAccessLevel: model.AccessLevel(getint("DEFAULT_ACCESS_LEVEL", int(model.LevelNonMember))),
		MailFrom:           getenv("MAIL_FROM", "Clark <onboarding@resend.dev>"),
		CleezyURL:          os.Getenv("CLEEZY_URL"),
		SpeakerURL:         os.Getenv("SPEAKER_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
