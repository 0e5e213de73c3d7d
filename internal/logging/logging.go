// Package logging configures the process-wide zerolog logger used by found's
// executors. The pipeline framework itself never logs; only the executor
// layer that wraps it does (see the concurrency model's I/O boundary).
package logging

import (
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Log is the process-wide logger, writing human-readable output to stderr.
var Log = zlog.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetVerbose raises or lowers the global log level.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
