package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// RuneLen is the document length in runes, counting each '\n' as one.
func (b *Buffer) RuneLen() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// RuneOffsetFromPos converts pos to a rune offset. With OffsetError an
// out-of-bounds pos fails; with OffsetClamp it is clamped first.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}

	off := 0
	for row := 0; row < clamped.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + clamped.Col, true
}

// PosFromRuneOffset converts a rune offset to a position. An offset on a line
// break maps to the end of the line it terminates.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	max := b.RuneLen()
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return Pos{}, false
		}
	case OffsetClamp:
		off = clampInt(off, 0, max)
	default:
		return Pos{}, false
	}

	for row, l := range b.lines {
		if off <= len(l) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(l) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}, true
}

func (b *Buffer) offset(p Pos) int {
	off, _ := b.RuneOffsetFromPos(p, OffsetClamp)
	return off
}
