package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/mvincent/patlog/core"
)

// JSONFormatter serializes the fixed event snapshot as one JSON object
// per line. It renders the same fields the pattern directives expose,
// not arbitrary key-value pairs.
type JSONFormatter struct {
	// TimestampFormat is a Go time layout (RFC3339 when empty)
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format renders the event as a JSON line
func (f *JSONFormatter) Format(lg core.Logger, level core.Level, ev *core.Event) string {
	buf := getBuffer()
	f.formatJSONToBuffer(buf, lg, level, ev)
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo renders the event as a JSON line directly into the writer
func (f *JSONFormatter) FormatTo(w io.Writer, lg core.Logger, level core.Level, ev *core.Event) error {
	buf := getBuffer()
	f.formatJSONToBuffer(buf, lg, level, ev)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(buf *bytes.Buffer, lg core.Logger, level core.Level, ev *core.Event) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	buf.WriteString(`{"time":"`)
	buf.Write(time.Unix(ev.Time, 0).AppendFormat(buf.AvailableBuffer(), layout))

	buf.WriteString(`","level":"`)
	buf.WriteString(level.String())

	buf.WriteString(`","logger":"`)
	owner := ev.Owner
	if owner == nil {
		owner = lg
	}
	if owner != nil {
		appendJSONString(buf, owner.Name())
	}

	buf.WriteString(`","thread":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.ThreadID, 10))

	if ev.ThreadName != "" {
		buf.WriteString(`,"thread_name":"`)
		appendJSONString(buf, ev.ThreadName)
		buf.WriteByte('"')
	}

	buf.WriteString(`,"fiber":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.FiberID, 10))

	buf.WriteString(`,"elapsed":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.Elapsed, 10))

	buf.WriteString(`,"file":"`)
	appendJSONString(buf, ev.File)
	buf.WriteString(`","line":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Line), 10))

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, ev.Message())
	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
