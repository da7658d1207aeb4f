package ui

import (
	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/atomicstack/tokencalc/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleListKey(keyMsg) {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	}
	return nil
}

// handleListKey moves the highlight. Up and down are always claimed; paging
// keys only while a list is shown, so home/end still move the caret otherwise.
func (m *Model) handleListKey(msg tea.KeyMsg) bool {
	n := m.suggestionCount()
	switch msg.String() {
	case "up":
		m.moveHighlight(m.highlight.Up(n))
		return true
	case "down":
		m.moveHighlight(m.highlight.Down(n))
		return true
	}
	if n == 0 {
		return false
	}
	switch msg.String() {
	case "pgup":
		m.moveHighlight(m.highlight.PageUp(n, m.maxVisibleItems()))
	case "pgdown":
		m.moveHighlight(m.highlight.PageDown(n, m.maxVisibleItems()))
	case "home":
		m.moveHighlight(m.highlight.Home(n))
	case "end":
		m.moveHighlight(m.highlight.End(n))
	default:
		return false
	}
	return true
}

func (m *Model) moveHighlight(changed bool) {
	if changed {
		events.Suggest.Highlight(m.highlight.Index)
	}
	m.syncViewport()
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.suggestionCount() == 0 {
		return tea.Quit
	}
	m.input.SetSuggestions(nil)
	m.highlight.Reset()
	return nil
}

// handleEnterKey splices the highlighted suggestion, or recalculates the
// current text when nothing is highlighted.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.highlight.Active(m.suggestionCount()) {
		m.selectSuggestion(m.highlight.Index)
		return nil
	}
	text := m.input.Text()
	res := m.input.CalculateValues(text)
	events.Calc.Result(text, res.String())
	return nil
}

// selectSuggestion replaces the in-progress segment with suggestion idx and
// moves the caret to the end of the new text.
func (m *Model) selectSuggestion(idx int) {
	list := m.input.Suggestions()
	if idx < 0 || idx >= len(list) {
		return
	}
	record := list[idx]
	text := expression.Splice(m.input.Text(), record.Name, record.Value)
	events.Input.Splice(record.Name, record.Value, text)

	m.input.SetInput(text)
	m.input.SetSuggestions(nil)
	m.highlight.Reset()
	res := m.input.CalculateValues(text)
	events.Calc.Result(text, res.String())
	m.placeCaret(len([]rune(text)))
}

func (m *Model) suggestionCount() int {
	return len(m.input.Suggestions())
}

func (m *Model) syncViewport() {
	m.highlight.EnsureVisible(m.suggestionCount(), m.maxVisibleItems())
}
