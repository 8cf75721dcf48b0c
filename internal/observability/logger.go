package observability

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/Aussie4Beer56/tempconvert/internal/config"
)

type Logger struct {
	logger *slog.Logger
}

// NewLogger writes human readable lines in dev and JSON otherwise. Pass
// os.Stderr in the CLI: stdout belongs to the conversion dialogue.
func NewLogger(w io.Writer, cfg config.Config, component string) Logger {
	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
		})
		return Logger{logger: slog.New(h).With("component", component)}
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return Logger{logger: slog.New(h).With("component", component, "env", cfg.AppEnv)}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l Logger) With(args ...any) Logger {
	return Logger{logger: l.logger.With(args...)}
}

func (l Logger) Debugf(format string, args ...any) {
	l.logger.Debug("debug", "message", fmt.Sprintf(format, args...))
}

func (l Logger) Infof(format string, args ...any) {
	l.logger.Info("info", "message", fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.logger.Error("error", "message", fmt.Sprintf(format, args...))
}
