package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const logFileName = "scitblr.log"

var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options controls where log records go.
type Options struct {
	Dir    string
	Level  string
	Stderr bool
}

// Init replaces the package logger. Without a directory or Stderr, records
// are discarded. The returned closer releases the log file, if any.
func Init(opts Options) (io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
		logFile, err := os.OpenFile(filepath.Join(opts.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, logFile)
		closer = logFile
	}

	level := ParseLevel(opts.Level)
	if opts.Stderr {
		writers = append(writers, os.Stderr)
		level = slog.LevelDebug
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	return closer, nil
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
