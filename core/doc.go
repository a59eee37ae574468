// Package core defines the shared types the rendering engine consumes.
//
// It provides the Level type for severities with bidirectional text
// conversion, the Event type that snapshots a single log occurrence,
// and the Logger interface that exposes the owning logger's name to
// the renderer without pulling in the logger package.
//
// An Event is created once per log call and is immutable afterwards,
// except for its message buffer, which only grows (via Appendf or
// AppendString) until the formatter has rendered the event. Events are
// pooled via sync.Pool to keep the hot path allocation-free: callers
// on the convenience path get an Event with GetEvent and return it
// with PutEvent once every handler has consumed it. One event must be
// mutated by a single call path only; sharing an in-flight event
// between goroutines is the caller's bug.
package core
