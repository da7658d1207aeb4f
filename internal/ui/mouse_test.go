package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func motion(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 4, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestMouseHoverHighlightsRows(t *testing.T) {
	h := newStartedHarness(t, fruit, Options{Mouse: true})
	h.Type("app")

	h.Send(motion(listTop + 1))
	expectHighlight(t, h.Model(), 1)
	h.Send(motion(listTop))
	expectHighlight(t, h.Model(), 0)
	h.Send(motion(0))
	expectHighlight(t, h.Model(), -1)
	h.Send(motion(listTop + 5))
	expectHighlight(t, h.Model(), -1)
}

func TestMouseClickSelectsRow(t *testing.T) {
	h := newStartedHarness(t, fruit, Options{Mouse: true})
	h.Type("app")

	h.Send(tea.MouseMsg{X: 4, Y: listTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	expectText(t, h.Model(), "Pineapple (7)")
	expectResult(t, h.Model(), "7")
	expectSuggestions(t, h.Model())
	expectCaret(t, h.Model(), 13)
}

func TestMouseWheelMovesHighlight(t *testing.T) {
	h := newStartedHarness(t, fruit, Options{Mouse: true})
	h.Type("app")

	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	expectHighlight(t, h.Model(), 1)
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	expectHighlight(t, h.Model(), 0)
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	h := newStartedHarness(t, fruit, Options{})
	h.Type("app")
	h.Send(motion(listTop))
	expectHighlight(t, h.Model(), -1)
}
