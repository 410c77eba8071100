// Package logging assembles the structured slog loggers used across the
// m3ucat pipeline.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes small attribute helpers so pipeline code logs with a consistent
// shape. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
