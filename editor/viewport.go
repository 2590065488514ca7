package editor

import "github.com/iw2rmb/shroud/mask"

// visibleRows returns the first and last logical rows currently on screen.
func (m *Model) visibleRows() (first, last int, ok bool) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 || m.buf == nil {
		return 0, 0, false
	}
	first = maxInt(m.viewport.YOffset, 0)
	last = minInt(first+h-1, m.buf.LineCount()-1)
	if last < first {
		return 0, 0, false
	}
	return first, last, true
}

// viewportWindows maps the visible rows to rune-offset windows for the
// engine. Rows are never wrapped, so the screen is one contiguous window.
func (m *Model) viewportWindows() []mask.Range {
	first, last, ok := m.visibleRows()
	if !ok {
		return nil
	}
	w, ok := m.buf.RowsWindow(first, last)
	if !ok {
		return nil
	}
	return []mask.Range{w}
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	y := m.viewport.YOffset
	switch {
	case row < y:
		y = row
	case row >= y+h:
		y = row - h + 1
	default:
		return
	}
	// The content may still be stale; set the offset directly and let
	// rebuildContent clamp it.
	m.viewport.YOffset = maxInt(y, 0)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
