// Package editor provides a Bubble Tea text editor component with privacy
// masking, backed by the buffer package.
//
// The editor owns input handling, viewport behavior and painting. Which runes
// are masked is decided by the mask package on every content, selection,
// viewport or configuration change; the editor only paints the result.
package editor
