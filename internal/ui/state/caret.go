package state

import (
	"unicode"

	"github.com/atomicstack/tokencalc/internal/expression"
)

// Caret is the text control's insertion point. Anchor marks the other end of
// a selection; Anchor == Pos means nothing is selected. Both are rune offsets.
type Caret struct {
	Pos    int
	Anchor int
}

// At returns a caret at pos with no selection.
func At(pos int) Caret {
	return Caret{Pos: pos, Anchor: pos}
}

// HasSelection reports whether a non-empty range is selected.
func (c Caret) HasSelection() bool {
	return c.Pos != c.Anchor
}

// Cursor returns the ordered selection range for text edits.
func (c Caret) Cursor() expression.CursorState {
	if c.Anchor < c.Pos {
		return expression.CursorState{Start: c.Anchor, End: c.Pos}
	}
	return expression.CursorState{Start: c.Pos, End: c.Anchor}
}

// Clamp keeps both ends inside text.
func (c *Caret) Clamp(text string) {
	n := len([]rune(text))
	c.Pos = clampInt(c.Pos, 0, n)
	c.Anchor = clampInt(c.Anchor, 0, n)
}

// Set places the caret at pos and drops any selection.
func (c *Caret) Set(pos int) {
	c.Pos = pos
	c.Anchor = pos
}

// MoveLeft moves one rune backward. Without extend an existing selection
// collapses to its start.
func (c *Caret) MoveLeft(text string, extend bool) bool {
	c.Clamp(text)
	if !extend && c.HasSelection() {
		c.Set(c.Cursor().Start)
		return true
	}
	if c.Pos == 0 {
		return false
	}
	return c.moveTo(c.Pos-1, extend)
}

// MoveRight moves one rune forward. Without extend an existing selection
// collapses to its end.
func (c *Caret) MoveRight(text string, extend bool) bool {
	c.Clamp(text)
	if !extend && c.HasSelection() {
		c.Set(c.Cursor().End)
		return true
	}
	if c.Pos >= len([]rune(text)) {
		return false
	}
	return c.moveTo(c.Pos+1, extend)
}

// MoveStart moves to the beginning of the text.
func (c *Caret) MoveStart(text string, extend bool) bool {
	c.Clamp(text)
	return c.moveTo(0, extend)
}

// MoveEnd moves to the end of the text.
func (c *Caret) MoveEnd(text string, extend bool) bool {
	c.Clamp(text)
	return c.moveTo(len([]rune(text)), extend)
}

// MoveWordBackward moves to the start of the previous word.
func (c *Caret) MoveWordBackward(text string) bool {
	c.Clamp(text)
	return c.moveTo(WordStart(text, c.Pos), false)
}

// MoveWordForward moves past the next word and its trailing space.
func (c *Caret) MoveWordForward(text string) bool {
	c.Clamp(text)
	runes := []rune(text)
	i := c.Pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return c.moveTo(i, false)
}

func (c *Caret) moveTo(pos int, extend bool) bool {
	old := *c
	c.Pos = pos
	if !extend {
		c.Anchor = pos
	}
	return *c != old
}

// WordStart returns the offset of the word that ends at or before pos,
// skipping any whitespace directly before pos.
func WordStart(text string, pos int) int {
	runes := []rune(text)
	i := clampInt(pos, 0, len(runes))
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// InsertText replaces the selection (or inserts at the caret) with insert and
// returns the new text with the caret placed after the inserted runes.
func InsertText(text string, c Caret, insert string) (string, Caret) {
	c.Clamp(text)
	runes := []rune(text)
	add := []rune(insert)
	cur := c.Cursor()
	out := make([]rune, 0, len(runes)-(cur.End-cur.Start)+len(add))
	out = append(out, runes[:cur.Start]...)
	out = append(out, add...)
	out = append(out, runes[cur.End:]...)
	return string(out), At(cur.Start + len(add))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
