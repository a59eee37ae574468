package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/mvincent/patlog/core"
)

// Formatter defines the interface for log line formatters
type Formatter interface {
	// Format renders the event and returns the accumulated text
	Format(lg core.Logger, level core.Level, ev *core.Event) string

	// FormatTo renders the event directly into the writer. The bytes
	// written are identical to what Format returns for the same inputs.
	FormatTo(w io.Writer, lg core.Logger, level core.Level, ev *core.Event) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
