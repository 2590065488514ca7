package mask

import "strings"

// Paint returns doc's text with every rune inside masked replaced by
// placeholder. Line terminators are never replaced.
func Paint(doc *Document, masked []Range, placeholder rune) string {
	if doc == nil {
		return ""
	}
	merged := Merge(masked)

	var sb strings.Builder
	off := 0
	i := 0
	for _, r := range doc.Text() {
		for i < len(merged) && merged[i].To <= off {
			i++
		}
		if r != '\n' && i < len(merged) && merged[i].Contains(off) {
			sb.WriteRune(placeholder)
		} else {
			sb.WriteRune(r)
		}
		off++
	}
	return sb.String()
}
