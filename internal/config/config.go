package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	CartBackend string
	Database    DatabaseConfig
	Redis       RedisConfig
	Content     ContentConfig
	Mail        MailConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

// ContentConfig holds the headless content source settings. BaseURL
// overrides the derived API URL when set (dev proxies, tests).
type ContentConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	BaseURL    string
}

// MailConfig holds the transactional email relay settings. Endpoint
// overrides the default relay URL when set.
type MailConfig struct {
	ServiceID  string
	TemplateID string
	UserID     string
	ToEmail    string
	Endpoint   string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("CART_BACKEND", "postgres")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SANITY_DATASET", "production")
	viper.SetDefault("SANITY_API_VERSION", "2021-10-21")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		CartBackend: getEnvOrViper("CART_BACKEND", "postgres"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnvOrViper("REDIS_ADDR", "localhost:6379"),
		},
		Content: ContentConfig{
			ProjectID:  getEnvOrViper("SANITY_PROJECT_ID", ""),
			Dataset:    getEnvOrViper("SANITY_DATASET", "production"),
			APIVersion: getEnvOrViper("SANITY_API_VERSION", "2021-10-21"),
			Token:      getEnvOrViper("SANITY_TOKEN", ""),
			BaseURL:    getEnvOrViper("SANITY_API_BASE_URL", ""),
		},
		Mail: MailConfig{
			ServiceID:  getEnvOrViper("EMAILJS_SERVICE_ID", ""),
			TemplateID: getEnvOrViper("EMAILJS_TEMPLATE_ID", ""),
			UserID:     getEnvOrViper("EMAILJS_USER_ID", ""),
			ToEmail:    getEnvOrViper("CONTACT_TO_EMAIL", ""),
			Endpoint:   getEnvOrViper("EMAILJS_ENDPOINT", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Content.ProjectID == "" {
		return nil, fmt.Errorf("SANITY_PROJECT_ID is required")
	}
	if cfg.CartBackend != "postgres" && cfg.CartBackend != "redis" {
		return nil, fmt.Errorf("CART_BACKEND must be postgres or redis, got %q", cfg.CartBackend)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
