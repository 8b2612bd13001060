// Package pipeline implements the order-of-service to slide deck pipeline.
//
// The segmentation engine is pure and synchronous:
//   - Input preparation and blank-line cleaning (CleanLyrics)
//   - Advisory scan for leftover section labels (ScanReservedLabels)
//   - Paragraph splitting and keyword sectioning (Segment)
//   - Keyword matching and sliding-window lyric pairing (BuildBlocks)
//   - Song title formatting for user selections (FormatSongTitle)
//
// Each Block maps to a named template layout through Block.Slide. The layout
// names and placeholder indices in layouts.go are the compatibility surface
// with slide templates and must not change.
//
// Rendering is split in two: HTMLDeckRenderer turns slides into an HTML deck
// using the template set's layouts, and the root slidemaker package prints
// that deck to PDF with headless Chrome (go-rod).
package pipeline
