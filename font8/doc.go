// Package font8 provides the fixed 8px bitmap font used for text rendering.
//
// Every glyph is eight pixel rows tall and at most eight pixels wide. A
// glyph's shape is stored as one byte per row with the most significant bit
// as the leftmost pixel, alongside the horizontal advance in pixels that the
// text cursor moves after it is drawn. Advances already include inter-glyph
// spacing, so text layout is a plain sum of advances.
//
// The face covers the printable subset a-z, A-Z, 0-9 and the punctuation
//
//	space ! " ( ) , - _ . : ; ? [ ] { }
//
// Lookup returns the zero Glyph for every other byte, including all bytes
// outside the 7-bit ASCII range. The zero Glyph has a zero advance and draws
// nothing, so unsupported characters simply take no space.
//
// Face adapts the table to golang.org/x/image/font.Face for use with
// font.Drawer and measuring helpers. The table itself is immutable, so all
// lookups are safe for concurrent use.
package font8
