package config

import (
	"os"
	"strconv"

	"agropalm/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Data     DataConfig
	Forecast ForecastConfig
}

// DatabaseConfig holds database connection settings. The database is
// optional: with no URL configured, reports are not persisted.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// DataConfig holds input file settings
type DataConfig struct {
	SoilFile string
	LeafFile string
}

// ForecastConfig holds grower baseline settings for the economic forecast
type ForecastConfig struct {
	LandSize     float64
	LandUnit     string
	CurrentYield float64
	YieldUnit    string
	PalmDensity  int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Data: DataConfig{
			SoilFile: os.Getenv("SOIL_FILE"),
			LeafFile: os.Getenv("LEAF_FILE"),
		},
		Forecast: ForecastConfig{
			LandSize:     getEnvFloatOrDefault("LAND_SIZE", 0),
			LandUnit:     getEnvOrDefault("LAND_UNIT", "hectares"),
			CurrentYield: getEnvFloatOrDefault("CURRENT_YIELD", 0),
			YieldUnit:    getEnvOrDefault("YIELD_UNIT", "tonnes/hectare"),
			PalmDensity:  getEnvIntOrDefault("PALM_DENSITY", 148),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.SoilFile == "" && config.Data.LeafFile == "" {
		return errors.ConfigInvalid("at least one of SOIL_FILE or LEAF_FILE is required")
	}
	if config.Forecast.PalmDensity <= 0 {
		return errors.ConfigInvalid("PALM_DENSITY must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
