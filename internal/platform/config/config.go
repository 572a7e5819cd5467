package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// JWT access token config
	JWTSecret         string
	JWTIssuer         string
	JWTAudience       string
	JWTExpiryDuration time.Duration

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration

	// Product image uploads
	UploadDir string

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "ecommerce-inventory-api")
	viper.SetDefault("JWT_AUDIENCE", "ecommerce-inventory-clients")
	viper.SetDefault("JWT_ACCESS_EXPIRY_MINUTES", 15)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DAYS", 7)
	viper.SetDefault("UPLOAD_DIR", "images")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.JWTAudience = viper.GetString("JWT_AUDIENCE")

	accessExpiryMinutes := viper.GetInt("JWT_ACCESS_EXPIRY_MINUTES")
	if accessExpiryMinutes <= 0 {
		accessExpiryMinutes = 15
		log.Printf("Warning: Invalid value for JWT_ACCESS_EXPIRY_MINUTES. Defaulting to %d.\n", accessExpiryMinutes)
	}
	cfg.JWTExpiryDuration = time.Duration(accessExpiryMinutes) * time.Minute

	refreshExpiryDays := viper.GetInt("REFRESH_TOKEN_EXPIRY_DAYS")
	if refreshExpiryDays <= 0 {
		refreshExpiryDays = 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DAYS. Defaulting to %d.\n", refreshExpiryDays)
	}
	cfg.RefreshTokenExpiryDuration = time.Duration(refreshExpiryDays) * 24 * time.Hour

	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	if cfg.UploadDir == "" {
		cfg.UploadDir = "images"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
