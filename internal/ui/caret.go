package ui

import (
	"github.com/atomicstack/tokencalc/internal/logging/events"
	uistate "github.com/atomicstack/tokencalc/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return cmd
}

// placeCaret collapses the caret at pos within the current text. Edits place
// the caret inside the same Update that changes the text, so a queued key
// never runs against a stale position.
func (m *Model) placeCaret(pos int) {
	before := m.caret
	m.caret = uistate.At(pos)
	m.caret.Clamp(m.input.Text())
	m.noteCaretChange(before)
}

func (m *Model) noteCaretChange(before uistate.Caret) {
	if before == m.caret {
		return
	}
	m.cursorDirty = true
	events.Input.Caret(m.caret.Pos, m.caret.Anchor)
}
