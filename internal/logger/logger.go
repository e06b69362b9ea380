package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Diagnostics go to stderr so they never mix
// with rendered probe output on stdout. CRIBL_DEBUG=1 lowers the level to
// debug; the default only surfaces warnings and errors.
func New(out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.WarnLevel
	if os.Getenv("CRIBL_DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
