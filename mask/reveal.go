package mask

// Selection is a possibly reversed selection; Head is where the cursor sits.
type Selection struct {
	Anchor int
	Head   int
}

// Range returns the normalized selection bounds.
func (s Selection) Range() Range {
	if s.Anchor <= s.Head {
		return Range{From: s.Anchor, To: s.Head}
	}
	return Range{From: s.Head, To: s.Anchor}
}

func (s Selection) IsEmpty() bool { return s.Anchor == s.Head }

// CursorReveal returns what the cursor at head reveals under mode. Unknown
// modes reveal nothing.
func CursorReveal(doc *Document, head int, mode RevealMode) []Range {
	if doc == nil {
		return nil
	}
	head = doc.Clamp(head)

	switch mode {
	case RevealLetter:
		if head < doc.Len() {
			return []Range{{From: head, To: head + 1}}
		}
		if head > 0 {
			return []Range{{From: head - 1, To: head}}
		}
		return nil
	case RevealWord:
		if r, ok := wordAt(doc, head); ok {
			return []Range{r}
		}
		return nil
	default:
		return nil
	}
}

// wordAt finds the word around head within its line. A cursor resting on a
// non-word character reveals nothing; at the end of a line the word to the
// left is used.
func wordAt(doc *Document, head int) (Range, bool) {
	line := doc.LineAt(head)
	text := []rune(line.Text)
	col := clampInt(head-line.From, 0, len(text))

	if col < len(text) && !isWordRune(text[col]) {
		return Range{}, false
	}

	left := col
	for left > 0 && isWordRune(text[left-1]) {
		left--
	}
	right := col
	for right < len(text) && isWordRune(text[right]) {
		right++
	}
	if right <= left {
		return Range{}, false
	}
	return Range{From: line.From + left, To: line.From + right}, true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// SelectionReveal returns the clamped, normalized span of every non-empty
// selection.
func SelectionReveal(doc *Document, sels []Selection) []Range {
	out := make([]Range, 0, len(sels))
	for _, s := range sels {
		if doc != nil {
			s = Selection{Anchor: doc.Clamp(s.Anchor), Head: doc.Clamp(s.Head)}
		}
		if s.IsEmpty() {
			continue
		}
		out = append(out, s.Range())
	}
	return out
}
