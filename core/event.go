package core

import (
	"bytes"
	"fmt"
	"sync"
)

// Logger is the minimal read-only view of an owning logger that the
// rendering core needs. The concrete logger type lives in the logger
// package; keeping the interface here avoids an import cycle.
type Logger interface {
	Name() string
}

// Event is a snapshot of one log occurrence. Everything except the
// message buffer is fixed at construction; the buffer only grows until
// the event has been rendered.
type Event struct {
	// File is the source file of the call site. The string must stay
	// valid for the lifetime of the event.
	File string
	// Line is the source line of the call site.
	Line int
	// Elapsed is a caller-defined counter, typically milliseconds since
	// process start.
	Elapsed uint64
	// ThreadID identifies the OS thread that produced the event.
	ThreadID uint64
	// FiberID identifies the lightweight task, recorded alongside the
	// thread id for correlation.
	FiberID uint64
	// Time is the event timestamp in unix seconds.
	Time int64
	// ThreadName is the human-readable name of the producing thread.
	ThreadName string
	// Owner is the logger the event belongs to, shared and read-only.
	Owner Logger
	// Level is the severity of the event.
	Level Level

	msg bytes.Buffer
}

// NewEvent creates an event snapshot. The parameter order mirrors the
// call-site capture: where, when, and under which identity the log call
// happened.
func NewEvent(owner Logger, level Level, file string, line int, elapsed uint64, threadID, fiberID uint64, when int64, threadName string) *Event {
	return &Event{
		File:       file,
		Line:       line,
		Elapsed:    elapsed,
		ThreadID:   threadID,
		FiberID:    fiberID,
		Time:       when,
		ThreadName: threadName,
		Owner:      owner,
		Level:      level,
	}
}

// Appendf appends fmt-style formatted text to the message buffer.
func (e *Event) Appendf(format string, args ...interface{}) {
	fmt.Fprintf(&e.msg, format, args...)
}

// AppendString appends raw text to the message buffer.
func (e *Event) AppendString(s string) {
	e.msg.WriteString(s)
}

// Message returns the accumulated message text.
func (e *Event) Message() string {
	return e.msg.String()
}

// eventPool is a pool of Event objects to reduce allocations
var eventPool = sync.Pool{
	New: func() interface{} {
		return &Event{}
	},
}

// GetEvent retrieves an Event from the pool. All snapshot fields are
// zeroed; the caller fills them before handing the event on.
func GetEvent() *Event {
	e := eventPool.Get().(*Event)
	e.File = ""
	e.Line = 0
	e.Elapsed = 0
	e.ThreadID = 0
	e.FiberID = 0
	e.Time = 0
	e.ThreadName = ""
	e.Owner = nil
	e.Level = UnknownLevel
	e.msg.Reset()
	return e
}

// PutEvent returns an Event to the pool. The event must not be used
// after this call.
func PutEvent(e *Event) {
	if e == nil {
		return
	}
	// Don't keep events whose message grew unusually large
	if e.msg.Cap() > 64*1024 {
		return
	}
	eventPool.Put(e)
}
