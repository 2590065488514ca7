package mask

import "regexp"

// Up to 3 leading spaces, 1-6 '#', then whitespace.
var headingRE = regexp.MustCompile(`^\s{0,3}#{1,6}\s`)

// IsHeadingLine reports whether text looks like a Markdown ATX heading.
func IsHeadingLine(text string) bool {
	return headingRE.MatchString(text)
}
