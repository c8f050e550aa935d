// Package buffer implements the in-memory document model for hew.
//
// A document is an ordered sequence of lines. Each line is stored as a
// sequence of fragments, one per grapheme cluster, carrying the cluster's
// rendered width and an optional visible replacement glyph.
//
// Locations are 0-based (Line, Grapheme) pairs. Grapheme may equal a line's
// grapheme count (after the last cluster) and Line may equal the line count
// (the virtual line past the end of the document).
package buffer
