package tween

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LogLevel gates diagnostic output. Messages below the level are dropped.
type LogLevel uint8

const (
	LogInfo LogLevel = iota
	LogWarn
	LogError
	LogSilent
)

var logLevelNames = [...]string{"info", "warn", "error", "silent"}

func (l LogLevel) String() string {
	if int(l) < len(logLevelNames) {
		return logLevelNames[l]
	}
	return fmt.Sprintf("LogLevel(%d)", l)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseEnum(value, "log level", logLevelNames[:])
	if err != nil {
		return err
	}
	*l = LogLevel(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l LogLevel) MarshalYAML() (any, error) { return l.String(), nil }

// Logger is the engine's diagnostic side channel. It never affects control
// flow; a Silent logger discards everything.
type Logger struct {
	Level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to w. A nil w writes to stderr.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Level: level, out: log.New(w, "[tween] ", 0)}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out.SetOutput(w)
}

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	if l == nil || level < l.Level || l.Level == LogSilent {
		return
	}
	l.out.Printf(level.String()+": "+format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(LogInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LogWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LogError, format, args...) }
