// Package formatter compiles printf-like patterns into reusable log
// line renderers.
//
// A pattern mixes literal text with %-prefixed directives:
//
//	%m message    %p level      %r elapsed   %c logger name
//	%t thread id  %F fiber id   %N thread name
//	%d timestamp  %f file       %l line
//	%T tab        %n newline    %% literal percent
//
// Only %d takes a sub-format, a brace-delimited strftime pattern such
// as %d{%H:%M:%S}; when absent, "%Y-%m-%d %H:%M:%S" is used. See
// DefaultPattern for the stock layout.
//
// Compilation never returns an error. A directive the registry does
// not know renders as a visible <<error_format %CODE>> marker, and a
// sub-format capture left open at the end of the pattern stops the
// scan and renders as <<pattern_error>>. Both conditions set the flag
// reported by IsError, so callers can detect the failure and switch to
// DefaultPattern while still having a working formatter.
//
// A compiled PatternFormatter is immutable and may render independent
// events from multiple goroutines. Format and FormatTo produce
// byte-identical output; FormatTo performs a single Write on a pooled
// buffer, following the handler write path.
package formatter
