package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisJobsDB   int    `mapstructure:"REDIS_JOBS_DB"`

	// Browser session tokens (draft ownership).
	SessionJWTSecret string `mapstructure:"SESSION_JWT_SECRET"`

	// Payments. When PAYMENTS_MOCK is true the fake gateway is selected at
	// startup and the Stripe key is not required.
	PaymentsMock    bool   `mapstructure:"PAYMENTS_MOCK"`
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	Currency        string `mapstructure:"CURRENCY"`

	// Availability. Mock mode returns a fixed slot list.
	AvailabilityMock bool `mapstructure:"AVAILABILITY_MOCK"`

	// Email.
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`

	// Draft garbage collection.
	DraftTTLHours int `mapstructure:"DRAFT_TTL_HOURS"`

	// IANA zone the customer-facing reminder time is promised in.
	TimeZone string `mapstructure:"TIME_ZONE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_JOBS_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "sweeply")
	viper.SetDefault("SESSION_JWT_SECRET", "")
	viper.SetDefault("PAYMENTS_MOCK", true)
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("CURRENCY", "aud")
	viper.SetDefault("AVAILABILITY_MOCK", true)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "bookings@sweeply.example")
	viper.SetDefault("DRAFT_TTL_HOURS", 72)
	viper.SetDefault("TIME_ZONE", "Australia/Sydney")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// MustValidate fails the process fast when server-only secrets are missing.
// Mock modes relax the corresponding requirement so local development works
// without any external accounts.
func MustValidate() {
	if err := Validate(AppConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
}

// Validate reports the first missing required setting.
func Validate(cfg Config) error {
	if !cfg.PaymentsMock && cfg.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required when PAYMENTS_MOCK is false")
	}
	if cfg.Env == "production" && cfg.SessionJWTSecret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET is required in production")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
