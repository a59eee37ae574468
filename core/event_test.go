package core

import "testing"

type namedLogger string

func (n namedLogger) Name() string { return string(n) }

func TestNewEvent_Snapshot(t *testing.T) {
	owner := namedLogger("root")
	ev := NewEvent(owner, InfoLevel, "main.go", 42, 1500, 7, 9, 1700000000, "worker-1")

	if ev.File != "main.go" {
		t.Errorf("File = %q, want %q", ev.File, "main.go")
	}
	if ev.Line != 42 {
		t.Errorf("Line = %d, want 42", ev.Line)
	}
	if ev.Elapsed != 1500 {
		t.Errorf("Elapsed = %d, want 1500", ev.Elapsed)
	}
	if ev.ThreadID != 7 || ev.FiberID != 9 {
		t.Errorf("ThreadID/FiberID = %d/%d, want 7/9", ev.ThreadID, ev.FiberID)
	}
	if ev.Time != 1700000000 {
		t.Errorf("Time = %d, want 1700000000", ev.Time)
	}
	if ev.ThreadName != "worker-1" {
		t.Errorf("ThreadName = %q, want %q", ev.ThreadName, "worker-1")
	}
	if ev.Owner.Name() != "root" {
		t.Errorf("Owner.Name() = %q, want %q", ev.Owner.Name(), "root")
	}
	if ev.Level != InfoLevel {
		t.Errorf("Level = %v, want InfoLevel", ev.Level)
	}
	if ev.Message() != "" {
		t.Errorf("new event has message %q, want empty", ev.Message())
	}
}

func TestEvent_MessageGrowsOnly(t *testing.T) {
	ev := NewEvent(namedLogger("root"), DebugLevel, "a.go", 1, 0, 0, 0, 0, "")

	ev.AppendString("hello")
	ev.Appendf(" %s=%d", "count", 3)

	if got := ev.Message(); got != "hello count=3" {
		t.Errorf("Message() = %q, want %q", got, "hello count=3")
	}

	ev.AppendString("!")
	if got := ev.Message(); got != "hello count=3!" {
		t.Errorf("Message() = %q, want %q", got, "hello count=3!")
	}
}

func TestEventPool_Reset(t *testing.T) {
	ev := GetEvent()
	ev.File = "old.go"
	ev.Level = FatalLevel
	ev.AppendString("stale")
	PutEvent(ev)

	// The pool may or may not hand the same object back; either way a
	// fresh event must be fully zeroed.
	fresh := GetEvent()
	defer PutEvent(fresh)
	if fresh.File != "" || fresh.Level != UnknownLevel || fresh.Message() != "" {
		t.Errorf("pooled event not reset: file=%q level=%v msg=%q",
			fresh.File, fresh.Level, fresh.Message())
	}
}

func TestElapsedMillis_Monotonic(t *testing.T) {
	StartClock()
	a := ElapsedMillis()
	b := ElapsedMillis()
	if b < a {
		t.Errorf("ElapsedMillis went backwards: %d then %d", a, b)
	}
}
