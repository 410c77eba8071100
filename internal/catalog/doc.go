// Package catalog holds the catalog data model and the heuristic decision
// logic of the pipeline: entry classification, category normalization,
// identifier generation, and URL deduplication.
//
// The classification and normalization rules are ordered tables. Their order
// is load-bearing: the first matching rule wins, and reordering changes
// outcomes. Keep new rules at the position that matches the intended
// precedence, not alphabetized.
package catalog
