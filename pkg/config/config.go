// Package config provides configuration for the wallet CLI.
// Values come from an optional YAML file and can be overridden through
// environment variables (a .env file is loaded automatically if present).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither the file nor the environment sets a value.
const (
	DefaultDBPath    = "./wallet.db"
	DefaultCurrency  = "$"
	DefaultListLimit = 10
)

// Config represents the application configuration.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string `yaml:"db_path"`
	// Currency is the symbol used when rendering amounts.
	Currency string `yaml:"currency"`
	// ListLimit is the default row cap for list commands.
	ListLimit int64 `yaml:"list_limit"`
}

// Load loads configuration.
// It reads the YAML file at configPath when one is given, loads .env from
// the current directory if available, and lets WALLET_* environment
// variables override file values.
func Load(configPath string) (*Config, error) {
	config := &Config{
		DBPath:    DefaultDBPath,
		Currency:  DefaultCurrency,
		ListLimit: DefaultListLimit,
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()

	if v := os.Getenv("WALLET_DB_PATH"); v != "" {
		config.DBPath = v
	}
	if v := os.Getenv("WALLET_CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("WALLET_LIST_LIMIT"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WALLET_LIST_LIMIT: %w", err)
		}
		config.ListLimit = limit
	}

	if config.DBPath == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}

	return config, nil
}
