package handler

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/mvincent/patlog/core"
	"github.com/mvincent/patlog/formatter"
)

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Path of the log file, opened in append mode (required)
	Path string
	// Formatter to use (defaults to a DefaultPattern formatter)
	Formatter formatter.Formatter
	// FileMode for created files (defaults to 0644)
	FileMode os.FileMode
}

// FileHandler appends rendered events to a file. Writes are
// mutex-serialized; there is no buffering or rotation.
type FileHandler struct {
	mu     sync.Mutex
	file   *os.File
	f      formatter.Formatter
	path   string
	closed bool
}

// NewFileHandler creates a file handler, opening the file immediately
// so configuration mistakes surface at construction time.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Path == "" {
		return nil, errors.New("file handler: path is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.FileMode)
	if err != nil {
		return nil, errors.Wrapf(err, "file handler: open %s", cfg.Path)
	}

	return &FileHandler{file: file, f: cfg.Formatter, path: cfg.Path}, nil
}

// Handle renders the event and appends it to the file
func (h *FileHandler) Handle(lg core.Logger, level core.Level, ev *core.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.Errorf("file handler: %s is closed", h.path)
	}
	return h.f.FormatTo(h.file, lg, level, ev)
}

// Close syncs and closes the underlying file. Handle calls after Close
// return an error.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return errors.Wrapf(err, "file handler: sync %s", h.path)
	}
	return errors.Wrapf(h.file.Close(), "file handler: close %s", h.path)
}
