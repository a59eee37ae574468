package handler

import (
	"github.com/mvincent/patlog/core"
)

// Handler defines the interface for log sinks. A handler receives
// events that already passed the owning logger's threshold and renders
// them with its bound formatter.
type Handler interface {
	// Handle renders and writes one event
	Handle(lg core.Logger, level core.Level, ev *core.Event) error

	// Close closes the handler and releases resources
	Close() error
}
