package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Vendor VendorConfig
	Cache  CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VendorConfig holds the vendor endpoint configuration
type VendorConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	// BrandKey selects the vendor's own products in the search feed.
	BrandKey string `mapstructure:"brand_key"`
	// MarkerTag is the search-filter key identifying the ready-mix line.
	MarkerTag       string `mapstructure:"marker_tag"`
	RequestsPerHour int    `mapstructure:"requests_per_hour"`
}

// CacheConfig holds the persistent ingredient cache configuration
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mymuesli-analyzer/")

	v.SetEnvPrefix("MMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("vendor.base_url", "https://www.mymuesli.com")
	v.SetDefault("vendor.api_key", "")
	v.SetDefault("vendor.brand_key", "mymuesli")
	v.SetDefault("vendor.marker_tag", "is-ready-mix")
	v.SetDefault("vendor.requests_per_hour", 1000)

	v.SetDefault("cache.dir", defaultCacheDir())
}

// defaultCacheDir mirrors the conventional per-user cache location.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cache/mymuesli-analyzer"
	}
	return filepath.Join(home, ".cache", "mymuesli-analyzer")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Vendor.APIKey == "" {
		return fmt.Errorf("vendor API key is required (set MMA_VENDOR_API_KEY)")
	}
	if config.Vendor.BaseURL == "" {
		return fmt.Errorf("vendor base URL must not be empty")
	}
	if config.Vendor.RequestsPerHour <= 0 {
		return fmt.Errorf("vendor requests per hour must be positive, got: %d", config.Vendor.RequestsPerHour)
	}
	if config.Cache.Dir == "" {
		return fmt.Errorf("cache directory must not be empty")
	}
	return nil
}
