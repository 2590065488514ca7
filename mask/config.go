package mask

import "strings"

// RevealMode selects what the cursor position alone reveals.
type RevealMode int

const (
	RevealNone   RevealMode = iota // mask everything
	RevealLetter                   // one character at the cursor
	RevealWord                     // the word under the cursor
)

// ParseRevealMode maps "none", "letter" and "word" (case-insensitive) to a
// RevealMode. Anything else yields RevealNone.
func ParseRevealMode(s string) RevealMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letter":
		return RevealLetter
	case "word":
		return RevealWord
	default:
		return RevealNone
	}
}

func (m RevealMode) String() string {
	switch m {
	case RevealLetter:
		return "letter"
	case RevealWord:
		return "word"
	default:
		return "none"
	}
}

func (m RevealMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *RevealMode) UnmarshalText(b []byte) error {
	*m = ParseRevealMode(string(b))
	return nil
}

// Exclusions are the structural regions that stay visible regardless of the
// cursor. Any subset may be active.
type Exclusions struct {
	LeadingMetadataBlock bool
	TitleLine            bool
	Headings             bool
}

// Config is the engine configuration carried in every Snapshot.
type Config struct {
	Enabled         bool
	Reveal          RevealMode
	RevealSelection bool
	Exclude         Exclusions
}
