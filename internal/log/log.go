// Package log builds the console logger shared by all commands.
//
// Info messages go to stdout as plain text, warnings and errors go to stderr,
// and debug messages are printed only in verbose mode.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the sugared zap logger used across the tool.
type Logger = zap.SugaredLogger

// New returns a logger writing info to stdout and warnings/errors to stderr.
func New(stdout, stderr io.Writer, verbose bool) *Logger {
	return zap.New(zapcore.NewTee(
		stdoutCore(stdout, verbose),
		stderrCore(stderr, verbose),
	)).Sugar()
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return zap.NewNop().Sugar()
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}
		return l == zapcore.InfoLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stderr), zapcore.WarnLevel)
}

// consoleEncoder prefixes messages with the level only in verbose mode.
func consoleEncoder(verbose bool) zapcore.Encoder {
	levelKey := ""
	if verbose {
		levelKey = "level"
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
}
