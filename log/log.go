package log

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	logReady bool
)

// Init sets up console logging on stderr. Colors are disabled when stderr
// is not a terminal (e.g. running under systemd).
func Init(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Logger().Level(lvl)

	logReady = true
	return nil
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// Transition records a headset state change.
func Transition(state string) {
	if logReady {
		diagLog.Info().Str("state", state).Msg("headset")
	}
}

// Routing records a default-device change for one direction. An empty node
// means no candidate was available and nothing was asserted.
func Routing(direction, node string) {
	if !logReady {
		return
	}
	if node == "" {
		diagLog.Info().Str("direction", direction).Msg("no fallback available")
		return
	}
	diagLog.Info().Str("direction", direction).Str("node", node).Msg("default changed")
}
