package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server Server
	Store  Store
	NATS   NATS
	Email  Email
	Jobs   Jobs
}

type Server struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type Store struct {
	SeedFile string
}

type NATS struct {
	URL string
}

type Email struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	MailerSendKey string
	OwnerEmail    string
	OwnerName     string
	DevMode       bool // print notifications to logs instead of sending
}

type Jobs struct {
	SummarySchedule string
}

func Load() *Config {
	return &Config{
		Server: Server{
			Port:           getEnv("PORT", "8080"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			AllowedOrigins: []string{getEnv("CORS_ORIGIN", "*")},
		},
		Store: Store{
			SeedFile: getEnv("SEED_FILE", "data/seed.json"),
		},
		NATS: NATS{
			URL: getEnv("NATS_URL", ""),
		},
		Email: Email{
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPFrom:      getEnv("SMTP_FROM", "noreply@immaculatecrm.local"),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			OwnerEmail:    getEnv("OWNER_EMAIL", ""),
			OwnerName:     getEnv("OWNER_NAME", "Shop Owner"),
			DevMode:       getBool("EMAIL_DEV_MODE", true),
		},
		Jobs: Jobs{
			SummarySchedule: getEnv("SUMMARY_SCHEDULE", "0 8 * * *"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
