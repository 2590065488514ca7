package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/shroud/buffer"
	graphemeutil "github.com/iw2rmb/shroud/internal/grapheme"
	"github.com/iw2rmb/shroud/mask"
)

type cellState struct {
	masked   bool
	selected bool
	cursor   bool
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	maskedByRow := m.maskedColsByRow(lines)

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, line, maskedByRow[row], cursor, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// maskedColsByRow projects the engine output onto rune columns per row. Rows
// outside the decided viewport are fully masked while privacy mode is on.
func (m *Model) maskedColsByRow(lines []string) [][]mask.Range {
	out := make([][]mask.Range, len(lines))
	if !m.cfg.Privacy.Enabled {
		return out
	}

	first, last, ok := m.visibleRows()
	off := 0
	for row, line := range lines {
		n := utf8.RuneCountInString(line)
		if !ok || row < first || row > last {
			out[row] = []mask.Range{{From: 0, To: n}}
		} else {
			for _, r := range mask.Clip(m.masked, mask.Range{From: off, To: off + n}) {
				out[row] = append(out[row], mask.Range{From: r.From - off, To: r.To - off})
			}
		}
		off += n + 1
	}
	return out
}

func (m *Model) renderLine(row int, line string, masked []mask.Range, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	runes := []rune(line)
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(runes))
	hasCursor := m.focused && row == cursor.Row

	stateAt := func(col int) cellState {
		s := cellState{cursor: hasCursor && col == cursor.Col}
		if hasSel && col >= selStart && col < selEnd {
			s.selected = true
		}
		for _, r := range masked {
			if r.Contains(col) {
				s.masked = true
				break
			}
		}
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(runes); {
		s := stateAt(i)
		j := i + 1
		for j < len(runes) && stateAt(j) == s {
			j++
		}
		sb.WriteString(m.paintRun(string(runes[i:j]), s))
		i = j
	}
	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Col >= len(runes) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) paintRun(text string, s cellState) string {
	st := m.cfg.Style
	style := st.Text
	switch {
	case s.cursor:
		style = st.Cursor
	case s.selected:
		style = st.Selection
	case s.masked && m.cfg.MaskStyle == MaskBlur:
		style = st.Blur
	case s.masked:
		style = st.Mask
	}

	if s.masked {
		switch m.cfg.MaskStyle {
		case MaskPassword:
			return style.Render(graphemeutil.Placeholder(text, '*', m.cfg.TabWidth))
		case MaskBlur:
		default:
			return style.Render(graphemeutil.Placeholder(text, ' ', m.cfg.TabWidth))
		}
	}
	return style.Render(strings.ReplaceAll(text, "\t", strings.Repeat(" ", m.cfg.TabWidth)))
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, lineLen)
	}
	return start, end, start < end
}

func gutterDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
