package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/shroud/editor"
	"github.com/iw2rmb/shroud/internal/config"
	"github.com/iw2rmb/shroud/mask"
)

type maskOptions struct {
	cursor     int
	selections []string
	viewport   []string
	reveal     string
	style      string
	format     string

	excludeHeadings    bool
	excludeTitle       bool
	excludeFrontmatter bool
	noSelectionReveal  bool
}

func newMaskCmd(root *rootOptions) *cobra.Command {
	opts := &maskOptions{}

	cmd := &cobra.Command{
		Use:   "mask FILE",
		Short: "Print FILE with everything but the revealed text masked",
		Long: `Runs one masking decision over FILE ("-" reads stdin) and prints the
result. Privacy is always on; other settings come from --config and
can be overridden per flag. Offsets are in runes from the start of the text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			settings, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			settings.Enabled = true
			applyMaskFlags(cmd, opts, &settings)

			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			snap, err := opts.snapshot(text, settings.MaskConfig())
			if err != nil {
				return err
			}

			masked := mask.Compute(snap)
			log.Debug("mask computed",
				"file", args[0],
				"ranges", len(masked),
				"reveal", snap.Config.Reveal.String(),
			)
			return writeMasked(cmd.OutOrStdout(), opts.format, snap, masked, settings.Style())
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.cursor, "cursor", 0, "cursor rune offset")
	f.StringArrayVar(&opts.selections, "select", nil, "selection as ANCHOR:HEAD (repeatable)")
	f.StringArrayVar(&opts.viewport, "viewport", nil, "visible window as FROM:TO (repeatable, default whole text)")
	f.StringVar(&opts.reveal, "reveal", "", "cursor reveal mode: none, letter or word")
	f.StringVar(&opts.style, "style", "", "mask style: hide, password or blur")
	f.StringVar(&opts.format, "format", "text", "output format: text, ranges or yaml")
	f.BoolVar(&opts.excludeHeadings, "exclude-headings", false, "never mask heading lines")
	f.BoolVar(&opts.excludeTitle, "exclude-title", false, "never mask the title line")
	f.BoolVar(&opts.excludeFrontmatter, "exclude-frontmatter", false, "never mask the leading metadata block")
	f.BoolVar(&opts.noSelectionReveal, "no-selection-reveal", false, "mask selected text too")
	return cmd
}

// applyMaskFlags overrides settings with the flags the user actually set.
func applyMaskFlags(cmd *cobra.Command, opts *maskOptions, s *config.Settings) {
	f := cmd.Flags()
	if f.Changed("reveal") {
		s.RevealMode = opts.reveal
	}
	if f.Changed("style") {
		s.MaskStyle = opts.style
	}
	if f.Changed("exclude-headings") {
		s.ExcludeHeadings = opts.excludeHeadings
	}
	if f.Changed("exclude-title") {
		s.ExcludeTitleLine = opts.excludeTitle
	}
	if f.Changed("exclude-frontmatter") {
		s.ExcludeFrontmatter = opts.excludeFrontmatter
	}
	if f.Changed("no-selection-reveal") {
		s.RevealSelection = !opts.noSelectionReveal
	}
}

func (o *maskOptions) snapshot(text string, cfg mask.Config) (mask.Snapshot, error) {
	doc := mask.NewDocument(text)
	snap := mask.Snapshot{Doc: doc, Cursor: o.cursor, Config: cfg}

	for _, s := range o.selections {
		a, h, err := parsePair(s)
		if err != nil {
			return mask.Snapshot{}, fmt.Errorf("--select %q: %w", s, err)
		}
		snap.Selections = append(snap.Selections, mask.Selection{Anchor: a, Head: h})
	}

	if len(o.viewport) == 0 {
		snap.Viewport = mask.WholeDocument(doc)
		return snap, nil
	}
	var windows []mask.Range
	for _, v := range o.viewport {
		from, to, err := parsePair(v)
		if err != nil {
			return mask.Snapshot{}, fmt.Errorf("--viewport %q: %w", v, err)
		}
		windows = append(windows, mask.Range{From: from, To: to})
	}
	snap.Viewport = mask.Merge(windows)
	return snap, nil
}

func parsePair(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected A:B")
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

type maskReport struct {
	Cursor     int          `yaml:"cursor"`
	RevealMode string       `yaml:"reveal_mode"`
	Masked     []rangeEntry `yaml:"masked"`
}

type rangeEntry struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

func writeMasked(w io.Writer, format string, snap mask.Snapshot, masked []mask.Range, style editor.MaskStyle) error {
	switch format {
	case "text":
		placeholder := '*'
		if style == editor.MaskHide {
			placeholder = ' '
		}
		_, err := io.WriteString(w, mask.Paint(snap.Doc, masked, placeholder))
		return err
	case "ranges":
		for _, r := range masked {
			if _, err := fmt.Fprintf(w, "%d\t%d\n", r.From, r.To); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		report := maskReport{
			Cursor:     snap.Doc.Clamp(snap.Cursor),
			RevealMode: snap.Config.Reveal.String(),
			Masked:     make([]rangeEntry, 0, len(masked)),
		}
		for _, r := range masked {
			report.Masked = append(report.Masked, rangeEntry{From: r.From, To: r.To})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
