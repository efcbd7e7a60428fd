package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/seabattle/internal/factory"
	"github.com/mcoot/seabattle/internal/render"
	redisstorage "github.com/mcoot/seabattle/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	BoardSize   int
	Seed        string
	Locale      string
	NoColor     bool
	StorageType string
	RedisURL    string
	LogLevel    string
	Output      string
	Trace       bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		BoardSize:   getEnvIntOrDefault("SEABATTLE_SIZE", 6),
		Seed:        os.Getenv("SEABATTLE_SEED"),
		Locale:      getEnvOrDefault("SEABATTLE_LANG", render.DefaultLocale),
		NoColor:     os.Getenv("NO_COLOR") != "",
		StorageType: getEnvOrDefault("SEABATTLE_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("SEABATTLE_REDIS_URL", redisstorage.DefaultConfig().URL),
		LogLevel:    getEnvOrDefault("SEABATTLE_LOG_LEVEL", "warn"),
		Output:      getEnvOrDefault("SEABATTLE_OUTPUT", "text"),
		Trace:       os.Getenv("SEABATTLE_TRACE") != "",
	}
}

// LoadDotEnv loads environment variables from path, if the file exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Logger creates the JSON logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// FactoryConfig converts CLI settings into application settings
func (c *Config) FactoryConfig(logger *slog.Logger, colors bool) (factory.Config, error) {
	switch c.Output {
	case "text", "json":
	default:
		return factory.Config{}, fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}

	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		BoardSize:   c.BoardSize,
		Locale:      c.Locale,
		Colors:      colors && !c.NoColor,
	}

	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return factory.Config{}, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
		}
		fc.Seed = &seed
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}

	return fc, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}
