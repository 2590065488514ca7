package buffer

import "github.com/iw2rmb/shroud/mask"

// Document returns an immutable view of the current text for the mask engine.
func (b *Buffer) Document() *mask.Document {
	return mask.NewDocumentFromLines(b.Lines())
}

// RowsWindow returns the rune-offset span covering rows [first, last],
// clamped to the document. ok is false when the span is empty of rows.
func (b *Buffer) RowsWindow(first, last int) (mask.Range, bool) {
	first = maxInt(first, 0)
	last = minInt(last, len(b.lines)-1)
	if last < first {
		return mask.Range{}, false
	}
	from := b.offset(Pos{Row: first})
	to := b.offset(Pos{Row: last, Col: len(b.lines[last])})
	return mask.Range{From: from, To: to}, true
}

// MaskSnapshot captures the buffer state as input for mask.Compute.
func (b *Buffer) MaskSnapshot(viewport []mask.Range, cfg mask.Config) mask.Snapshot {
	s := mask.Snapshot{
		Doc:      b.Document(),
		Cursor:   b.offset(b.cursor),
		Viewport: append([]mask.Range(nil), viewport...),
		Config:   cfg,
	}
	if r, ok := b.SelectionRaw(); ok {
		s.Selections = []mask.Selection{{
			Anchor: b.offset(r.Start),
			Head:   b.offset(r.End),
		}}
	}
	return s
}
