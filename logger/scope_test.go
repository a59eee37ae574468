package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvincent/patlog/core"
)

func TestScope_DispatchesOnEnd(t *testing.T) {
	var buf bytes.Buffer
	lg := newBufLogger(&buf, DebugLevel)

	s := lg.At(InfoLevel)
	s.Appendf("processed %d items", 3)
	s.End()

	if !strings.Contains(buf.String(), "processed 3 items") {
		t.Errorf("Expected scope message in output, got: %q", buf.String())
	}
}

func TestScope_ExactlyOnce(t *testing.T) {
	var buf bytes.Buffer
	lg := newBufLogger(&buf, DebugLevel)

	s := lg.At(InfoLevel)
	s.AppendString("once")
	s.End()
	s.End()
	s.End()

	if n := strings.Count(buf.String(), "once"); n != 1 {
		t.Errorf("scope dispatched %d times, want 1", n)
	}
}

// The deferred End after an early return must still deliver, and the
// normal-path End must not deliver twice.
func TestScope_DeferredEarlyReturn(t *testing.T) {
	var buf bytes.Buffer
	lg := newBufLogger(&buf, DebugLevel)

	run := func(early bool) {
		s := lg.At(WarnLevel)
		defer s.End()
		s.AppendString("begin")
		if early {
			return
		}
		s.AppendString(" end")
		s.End()
	}

	run(true)
	if !strings.Contains(buf.String(), "begin") {
		t.Errorf("early return lost the event: %q", buf.String())
	}

	buf.Reset()
	run(false)
	if n := strings.Count(buf.String(), "begin end"); n != 1 {
		t.Errorf("normal path dispatched %d times, want 1: %q", n, buf.String())
	}
}

func TestScope_WrapsPrebuiltEvent(t *testing.T) {
	var buf bytes.Buffer
	lg := newBufLogger(&buf, DebugLevel)

	ev := core.NewEvent(lg, core.ErrorLevel, "job.go", 8, 250, 7, 9, 1700000000, "worker-1")
	s := lg.Scope(ev)
	s.AppendString("wrapped")
	s.End()

	out := buf.String()
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "wrapped") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestScope_ThresholdStillApplies(t *testing.T) {
	var buf bytes.Buffer
	lg := newBufLogger(&buf, ErrorLevel)

	s := lg.At(DebugLevel)
	s.AppendString("quiet")
	s.End()

	if buf.Len() > 0 {
		t.Errorf("below-threshold scope was delivered: %q", buf.String())
	}
}

func TestScope_CapturesCallSite(t *testing.T) {
	lg := NewBuilder().Build()
	s := lg.At(InfoLevel)
	if !strings.HasPrefix(s.Event().File, "scope_test.go") {
		t.Errorf("scope call site = %q, want scope_test.go", s.Event().File)
	}
	if s.Event().Line == 0 {
		t.Error("scope call site line not captured")
	}
}
