// Package logger ties the pieces together: a named, leveled source
// that owns a formatter and fans events out to handlers.
//
// Loggers are built once with the fluent Builder and are immutable
// afterwards, so a logger may be shared freely. Events reach a logger
// three ways: pre-built via Log, through the formatted convenience
// methods (Debugf through Fatalf, which capture the call site), or
// through a Scope, which accumulates message text and guarantees the
// event is handed over exactly once when End runs.
package logger
