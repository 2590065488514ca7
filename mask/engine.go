package mask

// Snapshot is everything Compute needs for one decision.
type Snapshot struct {
	Doc        *Document
	Cursor     int
	Selections []Selection
	// Viewport lists the disjoint windows, in document order, that need a
	// decision. Nil means nothing is visible.
	Viewport []Range
	Config   Config
}

// WholeDocument is a viewport covering all of doc.
func WholeDocument(doc *Document) []Range {
	if doc == nil {
		return nil
	}
	return []Range{{From: 0, To: doc.Len()}}
}

// Reveals returns the merged set of ranges that stay legible: structural
// exclusions, the cursor reveal and, when enabled, the selections.
func Reveals(s Snapshot) []Range {
	if s.Doc == nil {
		return nil
	}
	var all []Range
	all = append(all, ExcludedRanges(s.Doc, s.Config.Exclude)...)
	all = append(all, CursorReveal(s.Doc, s.Cursor, s.Config.Reveal)...)
	if s.Config.RevealSelection {
		all = append(all, SelectionReveal(s.Doc, s.Selections)...)
	}
	return Merge(all)
}

// Compute returns the masked ranges for every line intersecting the viewport,
// sorted by From and non-overlapping. A disabled config masks nothing.
func Compute(s Snapshot) []Range {
	if !s.Config.Enabled || s.Doc == nil {
		return nil
	}

	reveal := Reveals(s)
	doc := s.Doc

	var out []Range
	nextLine := 0 // first line index not yet decided
	for _, w := range s.Viewport {
		w = Range{From: doc.Clamp(w.From), To: doc.Clamp(w.To)}
		if w.IsEmpty() {
			continue
		}

		pos := w.From
		for pos <= w.To {
			line := doc.LineAt(pos)
			if line.From > w.To {
				break
			}

			// Windows sharing a line decide it once.
			if line.Index >= nextLine {
				nextLine = line.Index + 1
				if !(s.Config.Exclude.Headings && IsHeadingLine(line.Text)) {
					span := line.Range()
					out = append(out, Subtract([]Range{span}, Clip(reveal, span))...)
				}
			}

			next := line.To + 1
			if next <= pos {
				break
			}
			pos = next
		}
	}
	return out
}
