// Package buffer implements the pure, rune-accurate document state edited in
// privacy mode: text, cursor, one selection and undo history.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open selections
// in document coordinates: [Start, End). Rune offsets count '\n' as one rune,
// which is the unit the mask package works in.
package buffer
