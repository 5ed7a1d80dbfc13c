// Package logging provides structured logging for storefront using zerolog.
//
// Loggers are built from a Config (level, format, output, file) and carried
// through context.Context. Every CLI invocation gets a ULID trace ID that is
// attached to log events and forwarded to the storefront API as X-Trace-ID.
package logging
