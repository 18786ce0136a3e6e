package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Options struct {
	Level  string
	Format string
	// NoColor disables ANSI colours in console output.
	NoColor bool
}

// New returns a logger writing to out. An empty level means warn.
func New(out io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var writer io.Writer
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		writer = zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor, TimeFormat: time.Kitchen}
	case FormatJSON:
		writer = out
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", opts.Format)
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Str("component", "dc").Logger(), nil
}

func ParseLevel(raw string) (zerolog.Level, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("parse log level: unknown level %q", raw)
	}

	return level, nil
}
