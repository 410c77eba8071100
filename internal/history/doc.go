// Package history persists run summaries in a local SQLite database so
// past conversions can be inspected after the fact.
package history
