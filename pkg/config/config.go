package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every externally supplied setting for the application.
type Config struct {
	DatabaseURL        string        `mapstructure:"PGSQL_URL"`
	Port               string        `mapstructure:"PORT"`
	IsProduction       bool          `mapstructure:"IS_PRODUCTION"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTExpiryDuration  time.Duration `mapstructure:"JWT_EXPIRY_DURATION"`
	JWTIssuer          string        `mapstructure:"JWT_ISSUER"`
	RateLimit          string        `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig reads configuration from a .env file (when present) and the
// process environment. Environment variables win over file values.
func LoadConfig(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "fintrack_backend")
	v.SetDefault("RATE_LIMIT", "30-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()
	for _, key := range []string{"PGSQL_URL", "PORT", "IS_PRODUCTION", "JWT_SECRET", "JWT_EXPIRY_DURATION", "JWT_ISSUER", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if origins := v.GetString("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
