// Package logging provides the leveled logger used by the ecosim drivers.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Parse parses a level name case-insensitively. Unknown names map to info.
func Parse(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled, prefixed lines through a standard library logger.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to stderr at the named level.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{
		level: Parse(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

// Level reports the minimum level written.
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) printf(level Level, tag, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	_ = l.out.Output(3, tag+" "+fmt.Sprintf(format, v...))
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, "[DEBUG]", format, v...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) { l.printf(LevelInfo, "[INFO]", format, v...) }

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, v ...any) { l.printf(LevelWarn, "[WARN]", format, v...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, "[ERROR]", format, v...) }

// Fatalf logs an error message and exits with status 1.
func (l *Logger) Fatalf(format string, v ...any) {
	_ = l.out.Output(2, "[FATAL] "+fmt.Sprintf(format, v...))
	os.Exit(1)
}
