package editor

import (
	"github.com/iw2rmb/shroud/buffer"
	"github.com/iw2rmb/shroud/mask"
)

// Reason records why masks were recomputed.
type Reason string

const (
	ReasonStartup         Reason = "startup"
	ReasonCommand         Reason = "command"
	ReasonSettingsChange  Reason = "settings-change"
	ReasonContentChange   Reason = "content-change"
	ReasonSelectionChange Reason = "selection-change"
	ReasonViewportChange  Reason = "viewport-change"
)

type ChangeEvent struct {
	Reason  Reason
	Version uint64
	Cursor  buffer.Pos
	Enabled bool

	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Masked is the engine output for the current viewport, in rune offsets.
	Masked []mask.Range
}

func buildChangeEvent(b *buffer.Buffer, reason Reason, enabled bool, masked []mask.Range) ChangeEvent {
	ev := ChangeEvent{
		Reason:  reason,
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Enabled: enabled,
		Masked:  append([]mask.Range(nil), masked...),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
