// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables that override file and default settings.
const (
	EnvArenaWidth      = "DUEL_ARENA_WIDTH"
	EnvArenaHeight     = "DUEL_ARENA_HEIGHT"
	EnvRefreshRate     = "DUEL_REFRESH_RATE"
	EnvMoveUnits       = "DUEL_MOVE_UNITS"
	EnvSeed            = "DUEL_SEED"
	EnvShowLines       = "DUEL_SHOW_LINES"
	EnvStatusInterval  = "DUEL_STATUS_INTERVAL_MS"
	EnvTelemetryDir    = "DUEL_TELEMETRY_DIR"
	EnvBreakerTimeout  = "DUEL_BREAKER_TIMEOUT"
	EnvBreakerFailures = "DUEL_BREAKER_MAX_FAILURES"
)

// LoadConfigFromEnv loads the file at path (or the defaults when path is
// empty), applies environment overrides and validates the result.
func LoadConfigFromEnv(path string) (*GameConfig, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnvironmentOverrides replaces settings with any DUEL_* environment
// variables that are set, then validates the result. Unparseable values
// are ignored.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	config.Arena.Width = getEnvAsFloatOrDefault(EnvArenaWidth, config.Arena.Width)
	config.Arena.Height = getEnvAsFloatOrDefault(EnvArenaHeight, config.Arena.Height)
	config.RefreshRate = getEnvAsFloatOrDefault(EnvRefreshRate, config.RefreshRate)
	config.MoveUnits = getEnvAsFloatOrDefault(EnvMoveUnits, config.MoveUnits)
	config.Seed = getEnvAsUint64OrDefault(EnvSeed, config.Seed)
	config.ShowLines = getEnvAsBoolOrDefault(EnvShowLines, config.ShowLines)
	config.StatusIntervalMS = getEnvAsFloatOrDefault(EnvStatusInterval, config.StatusIntervalMS)
	config.Telemetry.Dir = getEnvOrDefault(EnvTelemetryDir, config.Telemetry.Dir)
	config.Telemetry.BreakerTimeout = getEnvAsDurationOrDefault(EnvBreakerTimeout, config.Telemetry.BreakerTimeout)
	config.Telemetry.MaxConsecutiveFailures = getEnvAsUint32OrDefault(EnvBreakerFailures, config.Telemetry.MaxConsecutiveFailures)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsUint64OrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvAsUint32OrDefault(key string, defaultValue uint32) uint32 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint32(uintValue)
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
