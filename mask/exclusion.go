package mask

import "strings"

// MetadataBlock returns the span of a leading "---" block, from the opening
// delimiter through the first closing "---" or "..." line. An unterminated
// block is not metadata and yields ok == false.
func MetadataBlock(doc *Document) (Range, bool) {
	if doc == nil || doc.LineCount() < 2 {
		return Range{}, false
	}
	first := doc.Line(0)
	if strings.TrimSpace(first.Text) != "---" {
		return Range{}, false
	}
	for i := 1; i < doc.LineCount(); i++ {
		l := doc.Line(i)
		t := strings.TrimSpace(l.Text)
		if t == "---" || t == "..." {
			return Range{From: first.From, To: l.To}, true
		}
	}
	return Range{}, false
}

// TitleLine returns the span of the document title: the first line of the
// body when it is a heading. The body starts after a terminated metadata
// block, or at the first line otherwise.
func TitleLine(doc *Document) (Range, bool) {
	if doc == nil {
		return Range{}, false
	}
	idx := 0
	if block, ok := MetadataBlock(doc); ok {
		idx = doc.LineAt(block.To).Index + 1
		if idx >= doc.LineCount() {
			return Range{}, false
		}
	}
	title := doc.Line(idx)
	if !IsHeadingLine(title.Text) {
		return Range{}, false
	}
	return title.Range(), true
}

// ExcludedRanges returns the always-revealed structural ranges, unmerged.
// Heading lines beyond the title are handled per line by Compute.
func ExcludedRanges(doc *Document, ex Exclusions) []Range {
	var out []Range
	if ex.LeadingMetadataBlock {
		if r, ok := MetadataBlock(doc); ok {
			out = append(out, r)
		}
	}
	if ex.TitleLine {
		if r, ok := TitleLine(doc); ok {
			out = append(out, r)
		}
	}
	return out
}
