package mask

import "strings"

// Line is a derived view of one document line. To excludes the line
// terminator.
type Line struct {
	Index int // 0-based
	From  int
	To    int
	Text  string
}

func (l Line) Range() Range { return Range{From: l.From, To: l.To} }

// Document is an immutable rune-addressed view of a text with a line index.
type Document struct {
	lines  []string
	starts []int
	length int
}

// NewDocument splits text on '\n'. A document always has at least one line.
func NewDocument(text string) *Document {
	return NewDocumentFromLines(strings.Split(text, "\n"))
}

// NewDocumentFromLines builds a document whose lines are joined by '\n'.
func NewDocumentFromLines(lines []string) *Document {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d := &Document{
		lines:  append([]string(nil), lines...),
		starts: make([]int, len(lines)),
	}
	off := 0
	for i, l := range d.lines {
		d.starts[i] = off
		off += runeLen(l)
		if i < len(d.lines)-1 {
			off++
		}
	}
	d.length = off
	return d
}

// Len is the document length in runes.
func (d *Document) Len() int { return d.length }

func (d *Document) LineCount() int { return len(d.lines) }

// Text joins the lines back together.
func (d *Document) Text() string { return strings.Join(d.lines, "\n") }

// Clamp clamps off into [0, Len()].
func (d *Document) Clamp(off int) int { return clampInt(off, 0, d.length) }

// Line returns the line at 0-based index i, clamped into range.
func (d *Document) Line(i int) Line {
	i = clampInt(i, 0, len(d.lines)-1)
	from := d.starts[i]
	return Line{
		Index: i,
		From:  from,
		To:    from + runeLen(d.lines[i]),
		Text:  d.lines[i],
	}
}

// LineAt returns the line containing off. Offsets are clamped first; an
// offset sitting on a line terminator belongs to the line it ends.
func (d *Document) LineAt(off int) Line {
	off = d.Clamp(off)
	lo, hi := 0, len(d.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return d.Line(lo)
}

// Slice returns the text covered by r, clamped to the document.
func (d *Document) Slice(r Range) string {
	from := d.Clamp(r.From)
	to := d.Clamp(r.To)
	if to <= from {
		return ""
	}
	runes := []rune(d.Text())
	return string(runes[from:to])
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
