package formatter

import (
	"bytes"
	"io"

	"github.com/mvincent/patlog/core"
)

// DefaultPattern is the layout used when no pattern is configured:
// timestamp, thread id, thread name, fiber id, bracketed level and
// logger name, file:line, message, newline, tab-separated.
const DefaultPattern = "%d{%Y-%m-%d %H:%M:%S}%T%t%T%N%T%F%T[%p]%T[%c]%T%f:%l%T%m%n"

// patternErrorMark replaces the unparsed remainder of a pattern whose
// sub-format capture was never closed.
const patternErrorMark = "<<pattern_error>>"

// token is one compiled unit of a pattern: a literal text fragment or
// a directive with an optional sub-format.
type token struct {
	text      string // literal text, or the directive code
	sub       string // text captured between { and }, directives only
	directive bool
}

// parsePattern scans the pattern left to right and produces the token
// list. Non-% characters accumulate into a pending literal, "%%"
// escapes to a single literal %, and "%" otherwise starts a directive
// whose code is the maximal run of alphabetic characters. A "{"
// directly after the code captures everything up to the matching "}"
// verbatim as the sub-format. The second result is false when the
// pattern ends with an open capture; scanning stops there and the
// sentinel literal replaces the remainder.
func parsePattern(pattern string) ([]token, bool) {
	var toks []token
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			toks = append(toks, token{text: string(lit)})
			lit = lit[:0]
		}
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c != '%' {
			lit = append(lit, c)
			i++
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '%' {
			// %% escapes to one literal %, without flushing
			lit = append(lit, '%')
			i += 2
			continue
		}

		j := i + 1
		for j < len(pattern) && isAlpha(pattern[j]) {
			j++
		}
		code := pattern[i+1 : j]

		var sub string
		if j < len(pattern) && pattern[j] == '{' {
			k := j + 1
			for k < len(pattern) && pattern[k] != '}' {
				k++
			}
			if k == len(pattern) {
				// capture never closed: emit the sentinel and stop
				flush()
				toks = append(toks, token{text: patternErrorMark})
				return toks, false
			}
			sub = pattern[j+1 : k]
			j = k + 1
		}

		flush()
		toks = append(toks, token{text: code, sub: sub, directive: true})
		i = j
	}
	flush()
	return toks, true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// PatternFormatter compiles a printf-like pattern once into an ordered
// list of rendering steps and replays them for every event. It is
// immutable after construction and safe for concurrent rendering of
// independent events.
type PatternFormatter struct {
	pattern string
	steps   []Step
	err     bool
}

// NewPatternFormatter compiles the pattern. Compilation never fails
// outright: malformed input leaves visible error markers in the step
// list and sets the error flag, so callers can inspect IsError and
// fall back to DefaultPattern if they prefer.
func NewPatternFormatter(pattern string) *PatternFormatter {
	f := &PatternFormatter{pattern: pattern}
	f.compile()
	return f
}

func (f *PatternFormatter) compile() {
	toks, ok := parsePattern(f.pattern)
	if !ok {
		f.err = true
	}
	for _, tok := range toks {
		if !tok.directive {
			f.steps = append(f.steps, literalStep(tok.text))
			continue
		}
		// single registry lookup for the whole code, even when the run
		// is longer than one character
		factory, known := directives[tok.text]
		if !known {
			f.steps = append(f.steps, literalStep("<<error_format %"+tok.text+">>"))
			f.err = true
			continue
		}
		st, subOK := factory(tok.sub)
		if !subOK {
			f.err = true
		}
		f.steps = append(f.steps, st)
	}
}

// Format renders the event and returns the accumulated text.
func (f *PatternFormatter) Format(lg core.Logger, level core.Level, ev *core.Event) string {
	buf := getBuffer()
	for _, st := range f.steps {
		st(buf, lg, level, ev)
	}
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo renders the event into the writer with a single Write call.
func (f *PatternFormatter) FormatTo(w io.Writer, lg core.Logger, level core.Level, ev *core.Event) error {
	buf := getBuffer()
	for _, st := range f.steps {
		st(buf, lg, level, ev)
	}
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// IsError reports whether compiling the pattern recorded a failure.
// A failed formatter still renders; error markers appear in its output.
func (f *PatternFormatter) IsError() bool {
	return f.err
}

// Pattern returns the original pattern text verbatim.
func (f *PatternFormatter) Pattern() string {
	return f.pattern
}

func literalStep(text string) Step {
	return func(buf *bytes.Buffer, _ core.Logger, _ core.Level, _ *core.Event) {
		buf.WriteString(text)
	}
}
