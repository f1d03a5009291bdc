package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Auth      AuthConfig
	Shop      ShopConfig
	Wodify    WodifyConfig
	LLM       LLMConfig
	Resend    ResendConfig
	Assistant AssistantConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	URL      string // Full database URL
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SessionConfig struct {
	Secret string
}

type AuthConfig struct {
	// JWTSecret verifies bearer tokens issued by the external member system.
	JWTSecret string
}

// ShopConfig points at the external shop backend that owns products, carts,
// orders, wishlists and reviews.
type ShopConfig struct {
	BaseURL string
}

// WodifyConfig points at the external gym-management system that owns the
// class schedule and booking state.
type WodifyConfig struct {
	BaseURL string
	APIKey  string
}

type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	LeadEmail string
}

type AssistantConfig struct {
	// ThinkingDelayMs is the artificial pause before an assistant reply.
	ThinkingDelayMs int
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Database: parseDatabaseConfig(),
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Shop: ShopConfig{
			BaseURL: getEnv("API_URL", "http://localhost:8000"),
		},
		Wodify: WodifyConfig{
			BaseURL: getEnv("WODIFY_API_URL", "http://localhost:8000"),
			APIKey:  getEnv("WODIFY_API_KEY", ""),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("LLM_API_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("LLM_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
		Resend: ResendConfig{
			APIKey:    getEnv("RESEND_API_KEY", ""),
			FromEmail: getEnv("RESEND_FROM_EMAIL", "noreply@crossfit-lindenberg.de"),
			FromName:  getEnv("RESEND_FROM_NAME", "CrossFit Lindenberg"),
			LeadEmail: getEnv("LEAD_NOTIFY_EMAIL", "info@crossfit-lindenberg.de"),
		},
		Assistant: AssistantConfig{
			ThinkingDelayMs: getEnvAsInt("ASSISTANT_THINKING_DELAY_MS", 800),
		},
	}

	return config, nil
}

func parseDatabaseConfig() DatabaseConfig {
	// Check if DATABASE_URL is provided
	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL != "" {
		return parseDatabaseURL(databaseURL)
	}

	// Fall back to individual environment variables
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvAsInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "gym_platform"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func parseDatabaseURL(databaseURL string) DatabaseConfig {
	config := DatabaseConfig{
		URL: databaseURL,
	}

	// Parse the URL
	u, err := url.Parse(databaseURL)
	if err != nil {
		// If parsing fails, return the URL as-is
		return config
	}

	// Extract components
	config.Host = u.Hostname()
	if u.Port() != "" {
		config.Port, _ = strconv.Atoi(u.Port())
	} else {
		config.Port = 5432 // Default PostgreSQL port
	}

	if u.User != nil {
		config.User = u.User.Username()
		config.Password, _ = u.User.Password()
	}

	// Remove leading slash from path to get database name
	config.DBName = strings.TrimPrefix(u.Path, "/")

	// Parse query parameters for SSL mode
	query := u.Query()
	config.SSLMode = query.Get("sslmode")
	if config.SSLMode == "" {
		config.SSLMode = "disable"
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
