// Package handler provides the sink side of the pipeline: destinations
// that receive events after the owning logger's threshold check and
// write the rendered line.
//
// Both built-in handlers are synchronous. They hold a single mutex
// around the formatter's FormatTo call, which performs exactly one
// Write per event, so concurrent loggers never interleave lines.
// Fan-out across several destinations is the logger's job; a handler
// owns exactly one writer.
package handler
