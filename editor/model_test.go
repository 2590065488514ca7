package editor

import (
	"fmt"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/shroud/buffer"
	"github.com/iw2rmb/shroud/mask"
)

func privacyOn(reveal mask.RevealMode) mask.Config {
	return mask.Config{Enabled: true, Reveal: reveal, RevealSelection: true}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_StatusLineReservesARow(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd", ShowNotices: true})
	m = m.SetSize(20, 3)
	if got := lipgloss.Height(m.View()); got != 3 {
		t.Fatalf("height with status: got %d, want 3", got)
	}
	if first, last, _ := m.visibleRows(); first != 0 || last != 1 {
		t.Fatalf("visible rows=%d..%d, want 0..1", first, last)
	}
}

func TestView_PasswordMaskRevealsWordAtCursor(t *testing.T) {
	m := New(Config{
		Text:      "secret words\nline two",
		Privacy:   privacyOn(mask.RevealWord),
		MaskStyle: MaskPassword,
	})
	m = m.SetSize(20, 2)

	got := viewLines(m)
	want := []string{"secret******", "********"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_HideMaskBlanksText(t *testing.T) {
	m := New(Config{
		Text:    "ab cd",
		Privacy: privacyOn(mask.RevealNone),
	})
	m = m.Blur()
	m = m.SetSize(10, 1)

	if got := viewLines(m); got[0] != "" {
		t.Fatalf("hidden line=%q, want blank", got[0])
	}
}

func TestView_BlurKeepsText(t *testing.T) {
	m := New(Config{
		Text:      "ab cd",
		Privacy:   privacyOn(mask.RevealNone),
		MaskStyle: MaskBlur,
	})
	m = m.Blur()
	m = m.SetSize(10, 1)

	if got := viewLines(m); got[0] != "ab cd" {
		t.Fatalf("blurred line=%q, want original text", got[0])
	}
	if len(m.Masked()) != 1 {
		t.Fatalf("masked=%v, want one range", m.Masked())
	}
}

func TestView_DisabledShowsEverything(t *testing.T) {
	m := New(Config{Text: "one\ntwo", ShowLineNums: true})
	m = m.Blur()
	m = m.SetSize(10, 2)

	got := viewLines(m)
	want := []string{"1 one", "2 two"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
	if m.Masked() != nil {
		t.Fatalf("disabled model must not mask: %v", m.Masked())
	}
}

func TestModel_MasksOnlyVisibleRows(t *testing.T) {
	m := New(Config{
		Text:    "aa\nbb\ncc\ndd",
		Privacy: privacyOn(mask.RevealNone),
	})
	m = m.SetSize(10, 2)

	want := []mask.Range{{From: 0, To: 2}, {From: 3, To: 5}}
	if got := m.Masked(); !reflect.DeepEqual(got, want) {
		t.Fatalf("masked=%v, want %v", got, want)
	}

	// Rows that were not decided are painted masked.
	content := stripANSI(m.renderContent())
	if content != "  \n  \n  \n  " {
		t.Fatalf("content=%q", content)
	}
}

func TestModel_ScrollRecomputesForNewViewport(t *testing.T) {
	m := New(Config{
		Text:    "aa\nbb\ncc\ndd",
		Privacy: privacyOn(mask.RevealNone),
	})
	m = m.SetSize(10, 2)
	m.Buffer().SetCursor(buffer.Pos{Row: 3, Col: 1})
	m, _ = m.Update(struct{}{})

	want := []mask.Range{{From: 6, To: 8}, {From: 9, To: 11}}
	if got := m.Masked(); !reflect.DeepEqual(got, want) {
		t.Fatalf("masked=%v, want %v", got, want)
	}
}

func TestModel_HeadingsStayVisible(t *testing.T) {
	m := New(Config{
		Text: "# Title\nbody",
		Privacy: mask.Config{
			Enabled: true,
			Exclude: mask.Exclusions{Headings: true},
		},
		MaskStyle: MaskPassword,
	})
	m = m.Blur()
	m = m.SetSize(20, 2)

	got := viewLines(m)
	want := []string{"# Title", "****"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_TogglePrivacyKey(t *testing.T) {
	m := New(Config{Text: "abc", ShowNotices: true})
	m = m.SetSize(10, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.Enabled() {
		t.Fatalf("expected privacy mode on")
	}
	if m.Notice() != "Privacy mode on" {
		t.Fatalf("notice=%q", m.Notice())
	}
	if len(m.Masked()) == 0 {
		t.Fatalf("expected masks after enabling")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.Enabled() || m.Masked() != nil {
		t.Fatalf("expected privacy mode off without masks")
	}
	if m.Notice() != "Privacy mode off" {
		t.Fatalf("notice=%q", m.Notice())
	}
}

func TestModel_OnChangeReasons(t *testing.T) {
	var reasons []Reason
	m := New(Config{
		Text:     "ab",
		Privacy:  privacyOn(mask.RevealLetter),
		OnChange: func(ev ChangeEvent) { reasons = append(reasons, ev.Reason) },
	})
	m = m.SetSize(10, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = m.SetPrivacy(privacyOn(mask.RevealWord), MaskPassword)
	m = m.SetEnabled(false)

	want := []Reason{
		ReasonStartup,
		ReasonViewportChange,
		ReasonSelectionChange,
		ReasonContentChange,
		ReasonSettingsChange,
		ReasonCommand,
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Fatalf("reasons=%v, want %v", reasons, want)
	}
	if m.MaskStyle() != MaskPassword || m.Privacy().Reveal != mask.RevealWord {
		t.Fatalf("settings not applied: %v %v", m.MaskStyle(), m.Privacy())
	}
}

func TestModel_ReadOnlyIgnoresEdits(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestModel_SelectionRevealed(t *testing.T) {
	m := New(Config{
		Text:      "hello world",
		Privacy:   privacyOn(mask.RevealNone),
		MaskStyle: MaskPassword,
	})
	m = m.Blur()
	m = m.SetSize(20, 1)
	m.Buffer().SetSelection(buffer.Range{Start: buffer.Pos{Col: 6}, End: buffer.Pos{Col: 11}})
	m, _ = m.Update(struct{}{})

	if got := viewLines(m)[0]; got != "******world" {
		t.Fatalf("view=%q, want %q", got, "******world")
	}
}
