// Package mask decides which parts of a document are masked in privacy mode.
//
// Offsets are 0-based rune indices into the document text, with '\n' counted
// as a single rune. Ranges are half-open: [From, To).
//
// The package is pure: Compute takes a Snapshot (text, cursor, selections,
// viewport windows, configuration) and returns a fresh, sorted,
// non-overlapping list of masked ranges. It keeps no state between calls.
package mask
