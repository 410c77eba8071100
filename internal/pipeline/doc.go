// Package pipeline orchestrates the one-shot playlist conversion: read the
// configured playlists, classify and normalize every entry, deduplicate by
// URL, partition into per-category documents, and emit the index manifest
// last.
//
// The whole run is synchronous and in-memory. Missing inputs are skipped
// with a warning; any write failure aborts the run before the index is
// written, so a published manifest never references missing files.
package pipeline
