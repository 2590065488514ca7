package editor

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/shroud/buffer"
	"github.com/iw2rmb/shroud/mask"
)

// Model is a Bubble Tea component that renders a buffer through the privacy
// mask engine.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool
	width   int
	height  int

	viewport viewport.Model

	// Last engine output, in rune offsets, and the state it was computed for.
	masked         []mask.Range
	windows        []mask.Range
	lastBufVersion uint64
	lastTextVer    uint64
	lastYOffset    int

	notice string
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.recompute(ReasonStartup)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Masked returns the masked ranges of the last recompute.
func (m Model) Masked() []mask.Range { return append([]mask.Range(nil), m.masked...) }

func (m Model) Enabled() bool { return m.cfg.Privacy.Enabled }

func (m Model) Privacy() mask.Config { return m.cfg.Privacy }

func (m Model) MaskStyle() MaskStyle { return m.cfg.MaskStyle }

// Notice returns the current status notice, if any.
func (m Model) Notice() string { return m.notice }

// SetEnabled switches privacy mode on or off.
func (m Model) SetEnabled(on bool) Model {
	if m.cfg.Privacy.Enabled == on {
		return m
	}
	m.cfg.Privacy.Enabled = on
	if m.cfg.ShowNotices {
		m.notice = "Privacy mode off"
		if on {
			m.notice = "Privacy mode on"
		}
	}
	m.recompute(ReasonCommand)
	return m
}

func (m Model) ToggleEnabled() Model { return m.SetEnabled(!m.cfg.Privacy.Enabled) }

// SetPrivacy replaces the engine configuration and mask style.
func (m Model) SetPrivacy(cfg mask.Config, style MaskStyle) Model {
	m.cfg.Privacy = cfg
	m.cfg.MaskStyle = style
	m.recompute(ReasonSettingsChange)
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = maxInt(m.height-m.statusHeight(), 0)

	m.followCursor()
	m.recompute(ReasonViewportChange)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		m.sync()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; the wheel scrolls freely.
		m.sync()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly.
		m.sync()
		return m, nil
	}
}

func (m Model) View() string {
	if m.statusHeight() == 0 {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.cfg.Style.Status.Render(m.notice)
}

func (m Model) statusHeight() int {
	if m.cfg.ShowNotices && m.height > 1 {
		return 1
	}
	return 0
}

// sync recomputes masks when the buffer or the scroll position changed since
// the last recompute.
func (m *Model) sync() {
	if m.buf == nil {
		return
	}
	textChanged := m.buf.TextVersion() != m.lastTextVer
	bufChanged := m.buf.Version() != m.lastBufVersion
	if textChanged || bufChanged {
		m.followCursor()
	}
	scrolled := m.viewport.YOffset != m.lastYOffset

	switch {
	case textChanged:
		m.recompute(ReasonContentChange)
	case bufChanged:
		m.recompute(ReasonSelectionChange)
	case scrolled:
		m.recompute(ReasonViewportChange)
	}
}

// recompute runs the mask engine for the visible rows and rebuilds content.
func (m *Model) recompute(reason Reason) {
	if m.buf == nil {
		return
	}
	m.windows = m.viewportWindows()
	if m.cfg.Privacy.Enabled {
		m.masked = mask.Compute(m.buf.MaskSnapshot(m.windows, m.cfg.Privacy))
	} else {
		m.masked = nil
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVer = m.buf.TextVersion()
	m.lastYOffset = m.viewport.YOffset

	m.cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "privacy masks recomputed",
		slog.String("reason", string(reason)),
		slog.Bool("enabled", m.cfg.Privacy.Enabled),
		slog.Int("windows", len(m.windows)),
		slog.Int("masked", len(m.masked)),
	)

	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, reason, m.cfg.Privacy.Enabled, m.masked))
	}
}

func (m *Model) rebuildContent() {
	// SetContent clamps YOffset; keep the offset we computed masks for.
	y := m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(y)
}
