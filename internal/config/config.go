package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Ledger database (embedded SQLite file)
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Query cache — tunable down for constrained terminal hardware
	CacheCapacity   int `mapstructure:"CACHE_CAPACITY"`
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS"`

	// Receipt printing worker pool
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`
	PrintQueueSize int    `mapstructure:"PRINT_QUEUE_SIZE"`
	PrinterKind    string `mapstructure:"PRINTER_KIND"` // log | none

	// AdminPINHash is the bcrypt hash of the supervisor PIN required to delete
	// orders. Generate with: go run ./cmd/seed -hash-pin <pin>
	AdminPINHash string `mapstructure:"ADMIN_PIN_HASH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "fornopos.db")
	viper.SetDefault("CACHE_CAPACITY", 50)
	viper.SetDefault("CACHE_TTL_SECONDS", 120)
	viper.SetDefault("WORKER_POOL_SIZE", 2)
	viper.SetDefault("PRINT_QUEUE_SIZE", 32)
	viper.SetDefault("PRINTER_KIND", "log")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
