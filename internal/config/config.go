package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Chat
	OpenAIAPIKey      string
	OpenAIModel       string
	CompletionTimeout time.Duration

	// Rate limiting (fixed window)
	RateLimitWindow time.Duration
	RateLimitMax    int
	RateLimitSweep  time.Duration

	// Storage
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Contact form email notification
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	ContactEmail      string

	// Admin endpoints
	AdminJWTSecret string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "https://perspectivehealthiowa.com"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		CompletionTimeout: getEnvAsDuration("COMPLETION_TIMEOUT", 10*time.Second),

		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 20),
		RateLimitSweep:  getEnvAsDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),

		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "website@perspectivehealthiowa.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Perspective Health Website"),
		ContactEmail:      getEnv("CONTACT_EMAIL", ""),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
