package observability

import (
	"log/slog"
	"os"
)

// Logger is the narrow logging surface threaded into services.
type Logger struct {
	slog *slog.Logger
}

func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{slog: slog.New(handler)}
}

func (l *Logger) Info(msg string) {
	l.slog.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.slog.Error(msg)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

func (l *Logger) Slog() *slog.Logger {
	return l.slog
}
