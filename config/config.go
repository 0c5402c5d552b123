package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Data     DataConfig
	Cache    CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds Open Food Facts client configuration
type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DataConfig holds paths to the static data files
type DataConfig struct {
	ProductCatalogPath  string `mapstructure:"product_catalog_path"`
	AdditiveCatalogPath string `mapstructure:"additive_catalog_path"`
	SubmissionsPath     string `mapstructure:"submissions_path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // only "memory" for now
	TTL  time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelwise/")

	// Environment variable settings
	v.SetEnvPrefix("LABELWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Provider defaults
	v.SetDefault("provider.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("provider.user_agent", "Labelwise/1.0 (support@labelwise.app)")
	v.SetDefault("provider.timeout", "10s")

	// Data file defaults
	v.SetDefault("data.product_catalog_path", "data/products.json")
	v.SetDefault("data.additive_catalog_path", "data/additives.json")
	v.SetDefault("data.submissions_path", "data/corrections.json")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Provider.BaseURL == "" {
		return fmt.Errorf("provider base URL is required (set LABELWISE_PROVIDER_BASE_URL)")
	}

	if config.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got: %s", config.Provider.Timeout)
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	return nil
}
