package editor

import (
	"io"
	"log/slog"
	"strings"

	"github.com/iw2rmb/shroud/mask"
)

// MaskStyle controls how masked text is painted.
type MaskStyle int

const (
	MaskHide     MaskStyle = iota // blank cells
	MaskPassword                  // '*' per cell
	MaskBlur                      // original text in the Blur style
)

// ParseMaskStyle maps "hide", "password" and "blur". Anything else hides.
func ParseMaskStyle(s string) MaskStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "password", "asterisks":
		return MaskPassword
	case "blur":
		return MaskBlur
	default:
		return MaskHide
	}
}

func (s MaskStyle) String() string {
	switch s {
	case MaskPassword:
		return "password"
	case MaskBlur:
		return "blur"
	default:
		return "hide"
	}
}

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Privacy is handed to the mask engine on every recompute.
	Privacy   mask.Config
	MaskStyle MaskStyle
	// ShowNotices reserves a status line for "privacy mode on/off" notices.
	ShowNotices bool

	ShowLineNums bool
	TabWidth     int // default: 4
	ReadOnly     bool
	Style        Style // zero value renders unstyled; see DefaultStyle
	KeyMap       KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange is called after every mask recompute.
	OnChange func(ChangeEvent)

	// Logger receives debug records for recomputes. Nil discards.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
