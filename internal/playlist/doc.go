// Package playlist scans extended M3U playlist text into raw catalog
// entries.
//
// The format is line oriented and noisy: #EXTINF metadata lines carry a
// category, an optional logo, and a display title; a following http line
// terminates the entry. Anything that does not fit that shape is skipped
// silently, since playlist sources routinely contain junk lines.
package playlist
