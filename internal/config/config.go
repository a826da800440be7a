package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	JWTSecret       string
	SessionLifetime time.Duration

	// Master identity (break-glass credentials, reseeded on startup)
	MasterEmail    string
	MasterPassword string

	// Email
	SMTPServer         string
	SMTPPort           int
	SMTPAccount        string
	SMTPPassword       string
	SendApprovalEmail  bool
	SendRejectionEmail bool

	// Server
	Port        string
	CORSOrigins string
	Environment string
}

func Load() *Config {
	// Missing .env is fine; everything falls back to the process env.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "legalmatch_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		SessionLifetime: parseDuration(getEnv("SESSION_LIFETIME", "8h")),

		MasterEmail:    strings.ToLower(strings.TrimSpace(getEnv("MASTER_AUTH_EMAIL", ""))),
		MasterPassword: getEnv("MASTER_AUTH_PASSWORD", ""),

		SMTPServer:         getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPAccount:        getEnv("ADMIN_EMAIL", ""),
		SMTPPassword:       getEnv("EMAIL_PASSWORD", ""),
		SendApprovalEmail:  getEnvBool("SEND_APPROVAL_EMAIL", false),
		SendRejectionEmail: getEnvBool("SEND_REJECTION_EMAIL", false),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		Environment: getEnv("APP_ENV", "development"),
	}
}

// DSN includes a short connect timeout and lock-wait budget so a sick
// database fails fast instead of queueing requests.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC" +
		" connect_timeout=5" +
		" options='-c lock_timeout=3s'"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 8 * time.Hour
	}
	return d
}
