// Package logging attaches a zerolog logger to the command context. Commands log to a
// rotated file in the XDG data directory so prompt output stays clean.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config describes the logger of one czjira run. ProjectRoot and ConfigPath are added to
// every event; an empty ConfigPath means the built-in defaults were loaded.
type Config struct {
	Writer      io.Writer
	ProjectRoot string
	ConfigPath  string
	Level       zerolog.Level
}

// New returns ctx carrying a logger built from config. Without a Writer, events go to
// czjira.log under the XDG data directory on fs.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	writer, err := openWriter(fs, config.Writer)
	if err != nil {
		return nil, err
	}

	source := config.ConfigPath
	if source == "" {
		source = "defaults"
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("project", config.ProjectRoot).
		Str("config", source).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

func openWriter(fs afero.Fs, writer io.Writer) (io.Writer, error) {
	if writer != nil {
		return writer, nil
	}
	if fs == nil {
		return nil, errors.New("filesystem required when no writer provided")
	}

	logFile, err := storage.New(fs).GetLogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get log path: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}, nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// With returns ctx carrying a child logger that adds key to every event. A context
// without a logger is returned unchanged.
func With(ctx context.Context, key, value string) context.Context {
	logger := Get(ctx).With().Str(key, value).Logger()
	return logger.WithContext(ctx)
}
