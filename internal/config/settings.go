// Package config persists the privacy settings and watches them for changes.
package config

import (
	"github.com/iw2rmb/shroud/editor"
	"github.com/iw2rmb/shroud/mask"
)

// Settings is the persisted user configuration.
type Settings struct {
	Enabled            bool   `toml:"enabled" yaml:"enabled"`
	MaskStyle          string `toml:"mask_style" yaml:"mask_style"`
	RevealMode         string `toml:"reveal_mode" yaml:"reveal_mode"`
	RevealSelection    bool   `toml:"reveal_selection" yaml:"reveal_selection"`
	ExcludeHeadings    bool   `toml:"exclude_headings" yaml:"exclude_headings"`
	ExcludeTitleLine   bool   `toml:"exclude_title_line" yaml:"exclude_title_line"`
	ExcludeFrontmatter bool   `toml:"exclude_frontmatter" yaml:"exclude_frontmatter"`
	ShowNotices        bool   `toml:"show_notices" yaml:"show_notices"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Enabled:         false,
		MaskStyle:       "hide",
		RevealMode:      "word",
		RevealSelection: true,
		ExcludeHeadings: true,
		ShowNotices:     true,
	}
}

// MaskConfig converts s to the engine configuration. Unknown reveal modes
// reveal nothing.
func (s Settings) MaskConfig() mask.Config {
	return mask.Config{
		Enabled:         s.Enabled,
		Reveal:          mask.ParseRevealMode(s.RevealMode),
		RevealSelection: s.RevealSelection,
		Exclude: mask.Exclusions{
			LeadingMetadataBlock: s.ExcludeFrontmatter,
			TitleLine:            s.ExcludeTitleLine,
			Headings:             s.ExcludeHeadings,
		},
	}
}

// Style returns the configured mask style; unknown styles hide.
func (s Settings) Style() editor.MaskStyle {
	return editor.ParseMaskStyle(s.MaskStyle)
}
