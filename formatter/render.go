package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/mvincent/patlog/core"
)

// Step is one bound rendering action, invoked in pattern order for
// every event. Steps are stateless; the timestamp step is the only one
// carrying payload (its compiled sub-format).
type Step func(buf *bytes.Buffer, lg core.Logger, level core.Level, ev *core.Event)

// StepFactory builds the step for one directive from its sub-format.
// The bool result is false when the sub-format could not be compiled;
// the returned step must still be usable.
type StepFactory func(sub string) (Step, bool)

// defaultTimeLayout is used when the %d directive carries no sub-format.
const defaultTimeLayout = "%Y-%m-%d %H:%M:%S"

// maxTimestampLen bounds the rendered timestamp. Longer results are
// truncated at the byte boundary rather than allowed to grow.
const maxTimestampLen = 64

// directives maps each directive code to its step factory. The map is
// settled at package initialization, before any compilation can run.
var directives = map[string]StepFactory{
	"m": plain(renderMessage),
	"p": plain(renderLevel),
	"r": plain(renderElapsed),
	"c": plain(renderLoggerName),
	"t": plain(renderThreadID),
	"n": plain(renderNewline),
	"d": newTimestampStep,
	"f": plain(renderFile),
	"l": plain(renderLine),
	"T": plain(renderTab),
	"F": plain(renderFiberID),
	"N": plain(renderThreadName),
}

// Register binds a directive code to a step factory, replacing any
// existing binding. The registry is not synchronized: call Register
// during program setup, before formatters are compiled concurrently.
func Register(code string, factory StepFactory) {
	directives[code] = factory
}

// plain wraps a fixed step into a factory that ignores the sub-format.
func plain(st Step) StepFactory {
	return func(string) (Step, bool) {
		return st, true
	}
}

func renderMessage(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.WriteString(ev.Message())
}

func renderLevel(buf *bytes.Buffer, _ core.Logger, level core.Level, _ *core.Event) {
	buf.WriteString(level.String())
}

func renderElapsed(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.Elapsed, 10))
}

// renderLoggerName prefers the event's owning logger; the logger passed
// into the render call is the fallback when the event has no owner.
func renderLoggerName(buf *bytes.Buffer, lg core.Logger, _ core.Level, ev *core.Event) {
	owner := ev.Owner
	if owner == nil {
		owner = lg
	}
	if owner != nil {
		buf.WriteString(owner.Name())
	}
}

func renderThreadID(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.ThreadID, 10))
}

func renderNewline(buf *bytes.Buffer, _ core.Logger, _ core.Level, _ *core.Event) {
	buf.WriteByte('\n')
}

func renderFile(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.WriteString(ev.File)
}

func renderLine(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Line), 10))
}

func renderTab(buf *bytes.Buffer, _ core.Logger, _ core.Level, _ *core.Event) {
	buf.WriteByte('\t')
}

func renderFiberID(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.FiberID, 10))
}

func renderThreadName(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
	buf.WriteString(ev.ThreadName)
}

var defaultTimeFormat = mustStrftime(defaultTimeLayout)

func mustStrftime(layout string) *strftime.Strftime {
	f, err := strftime.New(layout)
	if err != nil {
		panic(err)
	}
	return f
}

// newTimestampStep compiles the strftime-style sub-format once. An
// empty sub-format means the default layout. A sub-format strftime
// rejects falls back to the default layout and reports failure, so the
// formatter records it on its error flag.
func newTimestampStep(sub string) (Step, bool) {
	layout := sub
	if layout == "" {
		layout = defaultTimeLayout
	}
	ok := true
	f, err := strftime.New(layout)
	if err != nil {
		f = defaultTimeFormat
		ok = false
	}
	return func(buf *bytes.Buffer, _ core.Logger, _ core.Level, ev *core.Event) {
		// event time has seconds resolution; render in local time
		ts := f.FormatString(time.Unix(ev.Time, 0))
		if len(ts) > maxTimestampLen {
			ts = ts[:maxTimestampLen]
		}
		buf.WriteString(ts)
	}, ok
}
