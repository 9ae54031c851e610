package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFilePath is the path to the log file, relative to the working directory (project root when run via go run ./cmd/racesim).
const LogFilePath = "logs/racesim.txt"

// ParseLevel maps a config level name to a zerolog level. Unknown names give info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New returns a logger writing human-readable lines to console and JSON lines to LogFilePath.
// The returned closer closes the log file.
func New(level string, console io.Writer) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return NewWithWriters(level, console, f), f, nil
}

// NewWithWriters builds the logger over arbitrary sinks. file receives JSON; it may be nil.
func NewWithWriters(level string, console, file io.Writer) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}}
	if file != nil {
		writers = append(writers, file)
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// Sampled returns a logger for messages that can repeat every frame: a short burst passes,
// then one in every hundred.
func Sampled(l zerolog.Logger) zerolog.Logger {
	return l.Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      10 * time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
}
