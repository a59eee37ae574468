package logger

import (
	"github.com/mvincent/patlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	UnknownLevel = core.UnknownLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
