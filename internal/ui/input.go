package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/atomicstack/tokencalc/internal/logging/events"
	"github.com/atomicstack/tokencalc/internal/suggest"
	uistate "github.com/atomicstack/tokencalc/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	promptPrefix      = "» "
	promptPlaceholder = "(type to search)"
)

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	text := m.input.Text()
	switch msg.String() {
	case "ctrl+u":
		if text == "" {
			return false, nil
		}
		m.commitText("")
		m.placeCaret(0)
		events.Input.Cleared()
		return true, nil
	case "ctrl+w":
		return m.deleteWordBackward()
	case "ctrl+a":
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveStart(text, false) }), nil
	case "ctrl+e":
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveEnd(text, false) }), nil
	case "alt+b":
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveWordBackward(text) }), nil
	case "alt+f":
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveWordForward(text) }), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.deleteBackward()
	case tea.KeyDelete, tea.KeyCtrlD:
		return m.deleteForward()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.insertText(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.insertText(" "), nil
	case tea.KeyLeft:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveLeft(text, false) }), nil
	case tea.KeyRight:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveRight(text, false) }), nil
	case tea.KeyShiftLeft:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveLeft(text, true) }), nil
	case tea.KeyShiftRight:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveRight(text, true) }), nil
	case tea.KeyHome:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveStart(text, false) }), nil
	case tea.KeyEnd:
		return m.moveCaret(func(c *uistate.Caret) bool { return c.MoveEnd(text, false) }), nil
	}
	return false, nil
}

func (m *Model) moveCaret(move func(*uistate.Caret) bool) bool {
	before := m.caret
	if !move(&m.caret) {
		return false
	}
	m.noteCaretChange(before)
	return true
}

// insertText replaces the selection (or inserts at the caret) with value.
func (m *Model) insertText(value string) bool {
	if value == "" {
		return false
	}
	before := m.caret
	text, caret := uistate.InsertText(m.input.Text(), m.caret, value)
	m.commitText(text)
	m.caret = caret
	m.noteCaretChange(before)
	events.Input.Insert(text, caret.Pos)
	return true
}

func (m *Model) deleteBackward() (bool, tea.Cmd) {
	edit, ok := expression.Backspace(m.input.Text(), m.caret.Cursor())
	if !ok {
		return false, nil
	}
	events.Input.Backspace(edit.Text, edit.Caret, edit.Structural)
	m.applyEdit(edit)
	return true, nil
}

func (m *Model) deleteForward() (bool, tea.Cmd) {
	edit, ok := expression.Delete(m.input.Text(), m.caret.Cursor())
	if !ok {
		return false, nil
	}
	events.Input.Delete(edit.Text, edit.Caret, edit.Structural)
	m.applyEdit(edit)
	return true, nil
}

// deleteWordBackward removes the token ending at the caret when there is
// one, and the word before the caret otherwise.
func (m *Model) deleteWordBackward() (bool, tea.Cmd) {
	text := m.input.Text()
	cur := m.caret.Cursor()
	if !cur.HasSelection() {
		runes := []rune(text)
		if cur.Start > len(runes) {
			cur = expression.Caret(len(runes))
		}
		if _, ok := expression.MatchTrailingToken(string(runes[:cur.Start])); !ok {
			cur = expression.CursorState{Start: uistate.WordStart(text, cur.Start), End: cur.Start}
		}
	}
	edit, ok := expression.Backspace(text, cur)
	if !ok {
		return false, nil
	}
	events.Input.WordBackspace(edit.Text, edit.Caret)
	m.applyEdit(edit)
	return true, nil
}

// applyEdit commits a deletion and parks the caret where the edit says.
func (m *Model) applyEdit(edit expression.Edit) {
	m.commitText(edit.Text)
	m.placeCaret(edit.Caret)
}

// commitText stores text and derives everything that depends on it: the
// result is recalculated and the suggestions are refiltered.
func (m *Model) commitText(text string) {
	m.input.SetInput(text)
	res := m.input.CalculateValues(text)
	events.Calc.Result(text, res.String())
	m.refilter()
}

func (m *Model) refilter() {
	text := m.input.Text()
	matches := suggest.Filter(m.index(), text)
	m.input.SetSuggestions(matches)
	m.highlight.Reset()
	m.syncViewport()
	events.Suggest.Filter(expression.ActiveTerm(text), len(matches))
}

func (m *Model) index() *suggest.Index {
	if m.adapter == nil {
		return nil
	}
	return m.adapter.Index()
}

func (m *Model) promptView() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.cursor.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		m.cursor.TextStyle = styles.Input.Copy()
	} else {
		m.cursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.Prompt, promptPrefix)
	text := m.input.Text()
	if text == "" {
		runes := []rune(promptPlaceholder)
		if styles.Placeholder != nil {
			m.cursor.TextStyle = styles.Placeholder.Copy()
		}
		return prompt + m.renderCaret(string(runes[0])) + render(styles.Placeholder, string(runes[1:]))
	}

	runes := []rune(text)
	caret := m.caret
	caret.Clamp(text)
	sel := caret.Cursor()
	var b strings.Builder
	b.WriteString(prompt)
	segment := func(from, to int) {
		if from >= to {
			return
		}
		style := styles.Input
		if caret.HasSelection() && from >= sel.Start && to <= sel.End {
			style = styles.Selection
		}
		b.WriteString(render(style, string(runes[from:to])))
	}
	// Split at the selection bounds so each run has one style, then draw the
	// caret over the rune it sits on.
	bounds := []int{0, sel.Start, sel.End, len(runes)}
	for i := 0; i+1 < len(bounds); i++ {
		from, to := bounds[i], bounds[i+1]
		if caret.Pos >= from && caret.Pos < to {
			segment(from, caret.Pos)
			b.WriteString(m.renderCaret(string(runes[caret.Pos])))
			segment(caret.Pos+1, to)
			continue
		}
		segment(from, to)
	}
	if caret.Pos >= len(runes) {
		b.WriteString(m.renderCaret(" "))
	}
	return b.String()
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.cursor.SetChar(char)

	base := m.cursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.cursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
