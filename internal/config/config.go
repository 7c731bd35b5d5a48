// Package config loads presentation options from the environment.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds the presentation defaults. The game rules are fixed and
// carry no configuration.
type Config struct {
	// ShowHints pre-selects the start screen option that marks legal
	// moves on the board.
	ShowHints bool
	// Theme names the color scheme. Unknown names fall back to the
	// default scheme.
	Theme string
}

// Default returns the configuration used when the environment sets
// nothing.
func Default() Config {
	return Config{
		ShowHints: true,
		Theme:     "classic",
	}
}

// Load builds the configuration from the environment.
func Load() Config {
	cfg := Default()
	cfg.ShowHints = GetEnvAsBool("OTHELLO_SHOW_HINTS", cfg.ShowHints)
	cfg.Theme = GetEnv("OTHELLO_THEME", cfg.Theme)

	return cfg
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsBool parses key as a boolean, keeping defaultValue on bad input.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
