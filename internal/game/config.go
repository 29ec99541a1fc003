package game

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/rpgschool/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mini-game rounds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// FPS is the number of loop ticks per second.
	FPS int

	// Map dimensions in tiles.
	Width, Height int

	// PlayerStart is the player's starting cell.
	PlayerStart world.Position

	// Telemetry enables the OTLP trace exporter. With a Honeycomb key set,
	// spans go to Honeycomb.
	Telemetry        bool
	HoneycombAPIKey  string
	HoneycombDataset string

	Environment string
	LogLevel    slog.Level
	LogFile     string
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		FPS:         60,
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		PlayerStart: world.Position{X: 3, Y: 3},
		Environment: "development",
		LogLevel:    slog.LevelInfo,
		LogFile:     "rpgschool.log",
	}
}

// LoadConfig reads settings from the environment on top of DefaultConfig.
// Values that fail to parse keep their defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = getEnvInt64("RPGSCHOOL_SEED", cfg.Seed)
	cfg.FPS = getEnvPositive("RPGSCHOOL_FPS", cfg.FPS)
	cfg.Width = getEnvPositive("RPGSCHOOL_WIDTH", cfg.Width)
	cfg.Height = getEnvPositive("RPGSCHOOL_HEIGHT", cfg.Height)
	cfg.Telemetry = getEnvBool("RPGSCHOOL_TELEMETRY", cfg.Telemetry)
	cfg.HoneycombAPIKey = getEnv("HONEYCOMB_API_KEY", "")
	cfg.HoneycombDataset = getEnv("HONEYCOMB_DATASET", "")
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	return cfg
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvPositive(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
