// Package config loads cyberbot settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingBotToken is returned by RequireBotToken when no token is set.
var ErrMissingBotToken = errors.New("BOT_TOKEN is required for the telegram front-end")

// Config holds all the configuration for the application
type Config struct {
	BotToken      string `yaml:"bot_token"`
	DatabasePath  string `yaml:"database_path"`
	ListenAddr    string `yaml:"listen_addr"`
	ActivityLimit int    `yaml:"activity_limit"`
	Debug         bool   `yaml:"debug"`
	UserName      string `yaml:"user_name"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DatabasePath:  "./data/cyberbot.db",
		ListenAddr:    ":8080",
		ActivityLimit: 10,
	}
}

// Load builds the configuration. A missing file at path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.BotToken = getEnv("BOT_TOKEN", cfg.BotToken)
	cfg.DatabasePath = getEnv("DB_PATH", cfg.DatabasePath)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.ActivityLimit = getEnvInt("ACTIVITY_LIMIT", cfg.ActivityLimit)
	cfg.Debug = getEnvBool("DEBUG", cfg.Debug)
	cfg.UserName = getEnv("CYBERBOT_USER", cfg.UserName)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields every front-end needs.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR cannot be empty")
	}
	if c.ActivityLimit <= 0 {
		return fmt.Errorf("ACTIVITY_LIMIT must be > 0")
	}
	return nil
}

// RequireBotToken fails when the telegram token is unset.
func (c *Config) RequireBotToken() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return ErrMissingBotToken
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
