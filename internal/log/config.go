package log

import (
	"io"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Level  Level  `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format Format `mapstructure:"format" validate:"omitempty,oneof=text json"`
	// Output defaults to stderr.
	Output io.Writer `mapstructure:"-"`
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
	}
}
