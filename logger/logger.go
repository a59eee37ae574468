package logger

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/mvincent/patlog/core"
	"github.com/mvincent/patlog/formatter"
	"github.com/mvincent/patlog/handler"
)

// Logger is a named log source (immutable after Build). It owns the
// severity threshold and fans events out to its handlers; rendering is
// delegated to the bound formatter.
type Logger struct {
	name      string
	level     core.Level
	formatter formatter.Formatter
	handlers  []handler.Handler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name      string
	level     core.Level
	formatter formatter.Formatter
	handlers  []handler.Handler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		name:  "root",
		level: core.DebugLevel, // Default level
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets the threshold level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFormatter sets the formatter shared by handlers that carry none
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithHandler appends a handler to the fan-out list
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	f := b.formatter
	if f == nil {
		f = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}
	return &Logger{
		name:      b.name,
		level:     b.level,
		formatter: f,
		handlers:  b.handlers,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the threshold level
func (l *Logger) Level() core.Level {
	return l.level
}

// Formatter returns the logger's bound formatter
func (l *Logger) Formatter() formatter.Formatter {
	return l.formatter
}

// Log hands one finished event to every handler, provided it meets the
// threshold. The event must not be mutated after this call.
func (l *Logger) Log(ev *core.Event) {
	if ev == nil || ev.Level < l.level {
		return
	}
	for _, h := range l.handlers {
		// a failing sink must not starve its siblings
		_ = h.Handle(l, ev.Level, ev)
	}
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, format, args...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a formatted message at FatalLevel. Delivery policy for
// fatal events is the caller's business; the logger does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(core.FatalLevel, format, args...)
}

// logf builds a pooled event from the call site and dispatches it. The
// thread and fiber ids stay zero on this path; call sites that track
// execution identity build their events explicitly.
func (l *Logger) logf(level core.Level, format string, args ...interface{}) {
	// Level check before any allocation
	if level < l.level || len(l.handlers) == 0 {
		return
	}

	file, line := callSite(3)

	ev := core.GetEvent()
	ev.Owner = l
	ev.Level = level
	ev.File = file
	ev.Line = line
	ev.Elapsed = core.ElapsedMillis()
	ev.Time = time.Now().Unix()
	ev.Appendf(format, args...)

	l.Log(ev)
	core.PutEvent(ev)
}

// callSite returns the base file name and line skip frames up the
// stack.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}

// Close closes every handler, returning the first error encountered.
func (l *Logger) Close() error {
	var first error
	for _, h := range l.handlers {
		if err := h.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
