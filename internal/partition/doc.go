// Package partition turns deduplicated catalog items into the persisted
// output layout: per-category JSON documents, size-bounded series pages,
// adult side files, and the index manifest.
//
// The index is written strictly last. A crash mid-run can leave category
// files without a covering index entry, but never an index referencing
// files that do not exist.
package partition
