// Command m3ucat converts extended M3U playlists into a partitioned JSON
// catalog and reports on past conversions.
package main
