package logger

import (
	"sync"
	"time"

	"github.com/mvincent/patlog/core"
)

// Scope owns one in-flight event and guarantees exactly-once hand-off
// to the owning logger, whichever exit path runs first. Use it with
// defer:
//
//	s := lg.At(logger.InfoLevel)
//	defer s.End()
//	s.Appendf("handled %d items", n)
//
// End always forwards the event; the logger's threshold decides
// whether it is delivered.
type Scope struct {
	lg   *Logger
	ev   *core.Event
	once sync.Once
}

// Scope wraps an already-built event for scoped dispatch.
func (l *Logger) Scope(ev *core.Event) *Scope {
	return &Scope{lg: l, ev: ev}
}

// At builds an event snapshot at the caller's location and wraps it in
// a Scope. Thread and fiber ids stay zero; callers that track
// execution identity should build the event themselves and use Scope.
func (l *Logger) At(level core.Level) *Scope {
	file, line := callSite(2)
	ev := core.NewEvent(l, level, file, line, core.ElapsedMillis(), 0, 0, time.Now().Unix(), "")
	return &Scope{lg: l, ev: ev}
}

// Event returns the wrapped event for direct field access.
func (s *Scope) Event() *core.Event {
	return s.ev
}

// Appendf appends fmt-style formatted text to the event message.
func (s *Scope) Appendf(format string, args ...interface{}) {
	s.ev.Appendf(format, args...)
}

// AppendString appends raw text to the event message.
func (s *Scope) AppendString(str string) {
	s.ev.AppendString(str)
}

// End hands the event to the owning logger. Only the first call
// dispatches; later calls are no-ops.
func (s *Scope) End() {
	s.once.Do(func() {
		s.lg.Log(s.ev)
	})
}
