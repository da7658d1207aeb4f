package ui

import tea "github.com/charmbracelet/bubbletea"

// listTop is the screen row of the first suggestion: below the header and
// the prompt.
const listTop = 2

// handleMouseMsg maps pointer events onto suggestion rows: hovering
// highlights, leaving the rows clears the highlight, a left click selects and
// the wheel moves the highlight.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouse {
		return nil
	}
	n := m.suggestionCount()
	if n == 0 {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveHighlight(m.highlight.Up(n))
		return nil
	case tea.MouseButtonWheelDown:
		m.moveHighlight(m.highlight.Down(n))
		return nil
	}
	row, onRow := m.rowAt(ev.Y)
	switch {
	case ev.Action == tea.MouseActionMotion:
		if onRow {
			m.moveHighlight(m.highlight.Set(row, n))
		} else {
			m.moveHighlight(m.highlight.Clear())
		}
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if onRow {
			m.selectSuggestion(row)
		}
	}
	return nil
}

// rowAt returns the suggestion index drawn on screen row y.
func (m *Model) rowAt(y int) (int, bool) {
	start, end := m.visibleRange(m.suggestionCount())
	if y < listTop || y >= listTop+(end-start) {
		return -1, false
	}
	return start + y - listTop, true
}
