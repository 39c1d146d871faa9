package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// MissionStartLayout is the calendar-date format for MISSION_START_DATE.
const MissionStartLayout = "2006-01-02"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Mission / seeding configuration
	MissionStartDate string `mapstructure:"MISSION_START_DATE"`
	RosterFile       string `mapstructure:"ROSTER_FILE"`
	SeedOnEmpty      bool   `mapstructure:"SEED_ON_EMPTY"`
	SeedRandomSeed   int64  `mapstructure:"SEED_RANDOM_SEED"` // 0 means time-based

	// Insight provider (generative AI) configuration
	AIAPIURL          string `mapstructure:"AI_API_URL"`
	AIAPIKey          string `mapstructure:"AI_API_KEY"`
	AIModel           string `mapstructure:"AI_MODEL"`
	AIMaxRetries      int    `mapstructure:"AI_MAX_RETRIES"`
	AIRetryBaseMillis int    `mapstructure:"AI_RETRY_BASE_MILLIS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "teamops")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_TTL_MINUTES", 12*60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Mission / seeding defaults
	viper.SetDefault("MISSION_START_DATE", "2026-01-12")
	viper.SetDefault("ROSTER_FILE", "config/roster.yaml")
	viper.SetDefault("SEED_ON_EMPTY", true)
	viper.SetDefault("SEED_RANDOM_SEED", 0)

	// Insight provider defaults
	viper.SetDefault("AI_API_URL", "")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_MODEL", "gemini-1.5-pro")
	viper.SetDefault("AI_MAX_RETRIES", 3)
	viper.SetDefault("AI_RETRY_BASE_MILLIS", 2000)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := config.MissionStart(); err != nil {
		return fmt.Errorf("MISSION_START_DATE: %w", err)
	}

	return nil
}

// MissionStart parses the configured mission-start calendar date.
func (c *Config) MissionStart() (time.Time, error) {
	return time.Parse(MissionStartLayout, c.MissionStartDate)
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
