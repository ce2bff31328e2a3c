package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings read from the environment, prefixed by TOURNEY_.
type Config struct {
	File     string `envconfig:"FILE" default:"tournaments.csv"`
	Room     string `envconfig:"ROOM" default:"PokerOK"` // room of added tournaments
	Currency string `envconfig:"CURRENCY" default:"USD"`
	Format   string `envconfig:"FORMAT" default:"MTT"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

func defaultConfig() Config {
	return Config{File: "tournaments.csv", Room: "PokerOK", Currency: "USD", Format: "MTT", LogLevel: "warn"}
}

// LoadConfig reads the configuration from the environment, after loading
// the optional .env file of the working directory.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}
	var cfg Config
	if err := envconfig.Process("tourney", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger creates a console logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	zc.EncoderConfig.TimeKey = ""
	return zc.Build()
}
