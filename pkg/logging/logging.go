// Package logging builds the zap logger StudyEd writes to its log file. The
// terminal belongs to the UI, so nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the subset of store.Config the logger reads.
type Config interface {
	LogPath() string
	LogLevel() string
}

// Logger is a sugared zap logger that redacts credentials.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New returns a logger appending JSON lines to cfg.LogPath(). An empty path
// discards everything.
func New(cfg Config) (*Logger, error) {
	if cfg == nil || cfg.LogPath() == "" {
		return Nop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath()), 0o755); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogPath()}
	zc.ErrorOutputPaths = []string{cfg.LogPath()}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return &Logger{SugaredLogger: zl.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.SugaredLogger.Debugw(msg, redact(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.SugaredLogger.Infow(msg, redact(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.SugaredLogger.Warnw(msg, redact(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.SugaredLogger.Errorw(msg, redact(keysAndValues)...)
}

func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(redact(keysAndValues)...)}
}

func redact(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		k, _ := kv[i].(string)
		if secret(k) {
			out = append(out, kv[i], "[REDACTED]")
			continue
		}
		out = append(out, kv[i], kv[i+1])
	}
	return out
}

func secret(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "password") || strings.Contains(key, "hash")
}
