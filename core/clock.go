package core

import (
	"sync"
	"time"
)

var (
	clockOnce sync.Once
	clockZero time.Time
)

// StartClock records the process start instant used by ElapsedMillis.
// It is safe to call multiple times; the instant is recorded exactly
// once, on the first call.
func StartClock() {
	clockOnce.Do(func() {
		clockZero = time.Now()
	})
}

// ElapsedMillis returns the number of milliseconds since StartClock was
// first called. Callers that never called StartClock get a self-starting
// clock; the first call then reads as zero.
func ElapsedMillis() uint64 {
	StartClock()
	return uint64(time.Since(clockZero) / time.Millisecond)
}
