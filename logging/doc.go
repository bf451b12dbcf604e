// Package logging provides structured logging using Go's standard library log/slog.
// It writes human-readable text by default, or JSON for structured collection,
// and integrates with Uber's Fx dependency injection framework.
package logging
