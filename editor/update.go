package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/shroud/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.TogglePrivacy) {
		return m.ToggleEnabled()
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(string(msg.Runes))
		}
		return m
	}

	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}
	edit := func(fn func()) {
		if !m.cfg.ReadOnly {
			fn()
		}
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveRune, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveRune, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveLine, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveLine, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveRune, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveRune, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveLine, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveLine, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		edit(m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		edit(m.buf.DeleteForward)
	case key.Matches(msg, km.Enter):
		edit(m.buf.InsertNewline)
	case key.Matches(msg, km.Undo):
		edit(func() { m.buf.Undo() })
	case key.Matches(msg, km.Redo):
		edit(func() { m.buf.Redo() })

	case msg.Type == tea.KeyTab:
		edit(func() { m.buf.InsertRune('\t') })
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		edit(func() { m.buf.InsertText(string(msg.Runes)) })
	}
	return m
}
