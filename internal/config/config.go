package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// InvalidInputPolicy decides what a run does with a line that is not a whole number.
type InvalidInputPolicy string

const (
	// InvalidInputSentinel converts -1 in place of the input and says nothing.
	InvalidInputSentinel InvalidInputPolicy = "sentinel"
	// InvalidInputFail stops the run with a parse error.
	InvalidInputFail InvalidInputPolicy = "fail"
)

type Config struct {
	AppEnv       string
	LogLevel     slog.Level
	InvalidInput InvalidInputPolicy
}

func Load() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	policy := InvalidInputSentinel
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("INVALID_INPUT"))); v != "" {
		switch InvalidInputPolicy(v) {
		case InvalidInputSentinel, InvalidInputFail:
			policy = InvalidInputPolicy(v)
		default:
			return Config{}, fmt.Errorf("invalid INVALID_INPUT %q (allowed: sentinel, fail)", v)
		}
	}

	return Config{
		AppEnv:       appEnv,
		LogLevel:     level,
		InvalidInput: policy,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
