package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	DisableDB    bool
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	AdvisorBaseURL string
	AdvisorTimeout time.Duration

	CORSAllowedOrigins []string
	RateLimitFormat    string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DISABLE_DB", false)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "finsight-backend")
	viper.SetDefault("ADVISOR_BASE_URL", "http://localhost:5000")
	viper.SetDefault("ADVISOR_TIMEOUT", "60s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.DisableDB = viper.GetBool("DISABLE_DB")
	if cfg.DatabaseURL == "" && !cfg.DisableDB {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION (%q). Defaulting to 12h.\n", viper.GetString("JWT_EXPIRY_DURATION"))
		jwtExpiry = 12 * time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdvisorBaseURL = viper.GetString("ADVISOR_BASE_URL")
	advisorTimeout, err := time.ParseDuration(viper.GetString("ADVISOR_TIMEOUT"))
	if err != nil {
		log.Printf("Warning: Invalid ADVISOR_TIMEOUT (%q). Defaulting to 60s.\n", viper.GetString("ADVISOR_TIMEOUT"))
		advisorTimeout = 60 * time.Second
	}
	cfg.AdvisorTimeout = advisorTimeout

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.RateLimitFormat = viper.GetString("RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}
