package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	HTTP    HTTPConfig
	Rules   RulesConfig
	Log     LogConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands

	// Interactions allowed per user in each RateLimitWindow
	RateLimit       int
	RateLimitWindow time.Duration
}

// Enabled reports whether the Discord front end should start
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL        string        // Optional: in-memory sessions when empty
	SessionTTL time.Duration // Lifetime of an idle calculator session
}

// HTTPConfig holds the JSON API configuration
type HTTPConfig struct {
	Addr           string // Optional: API disabled when empty
	AllowedOrigins []string
}

// Enabled reports whether the HTTP API should start
func (c HTTPConfig) Enabled() bool {
	return c.Addr != ""
}

// RulesConfig selects the pricing catalog
type RulesConfig struct {
	File           string // Optional: YAML catalog overriding the embedded one
	DefaultVariant string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	ttl, err := getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	window, err := getEnvAsDurationOrDefault("DISCORD_RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:           os.Getenv("DISCORD_TOKEN"),
			AppID:           os.Getenv("DISCORD_APP_ID"),
			GuildID:         os.Getenv("DISCORD_GUILD_ID"),
			RateLimit:       getEnvAsIntOrDefault("DISCORD_RATE_LIMIT", 60),
			RateLimitWindow: window,
		},
		Redis: RedisConfig{
			URL:        os.Getenv("REDIS_URL"),
			SessionTTL: ttl,
		},
		HTTP: HTTPConfig{
			Addr:           os.Getenv("HTTP_ADDR"),
			AllowedOrigins: getEnvAsListOrDefault("HTTP_ALLOWED_ORIGINS", []string{"*"}),
		},
		Rules: RulesConfig{
			File:           os.Getenv("RULES_FILE"),
			DefaultVariant: getEnvOrDefault("DEFAULT_VARIANT", "frosthaven"),
		},
		Log: LogConfig{
			Level:       getEnvOrDefault("LOG_LEVEL", "info"),
			Development: getEnvAsBoolOrDefault("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if !cfg.Discord.Enabled() && !cfg.HTTP.Enabled() {
		return nil, fmt.Errorf("DISCORD_TOKEN or HTTP_ADDR is required")
	}
	if cfg.Discord.Enabled() && cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}
	if cfg.Discord.RateLimit < 0 || cfg.Discord.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("DISCORD_RATE_LIMIT must not be negative and its window must be positive")
	}
	if cfg.Redis.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
