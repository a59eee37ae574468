package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mvincent/patlog/core"
	"github.com/mvincent/patlog/formatter"
)

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer for output (defaults to os.Stdout)
	Writer io.Writer
	// Formatter to use (defaults to a DefaultPattern formatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes rendered events to a writer, one Write call per
// event, serialized by a mutex so lines from different goroutines never
// interleave.
type ConsoleHandler struct {
	mu sync.Mutex
	w  io.Writer
	f  formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}
	return &ConsoleHandler{w: cfg.Writer, f: cfg.Formatter}
}

// Handle renders the event and writes it to the console writer
func (h *ConsoleHandler) Handle(lg core.Logger, level core.Level, ev *core.Event) error {
	h.mu.Lock()
	err := h.f.FormatTo(h.w, lg, level, ev)
	h.mu.Unlock()
	return err
}

// Close closes the handler. The writer is not owned and stays open.
func (h *ConsoleHandler) Close() error {
	return nil
}
