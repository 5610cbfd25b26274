package cli

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger writing to w. Unknown or empty levels fall
// back to warn.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = noColor
	})).Level(lvl).With().Timestamp().Logger()
}
