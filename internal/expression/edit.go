package expression

// CursorState is the caret or selection of the text control, in rune offsets.
// Start == End means a plain caret.
type CursorState struct {
	Start int
	End   int
}

// Caret builds a CursorState without a selection.
func Caret(pos int) CursorState {
	return CursorState{Start: pos, End: pos}
}

// HasSelection reports whether a non-empty range is selected.
func (c CursorState) HasSelection() bool {
	return c.Start != c.End
}

func (c CursorState) normalize(n int) CursorState {
	if c.Start > c.End {
		c.Start, c.End = c.End, c.Start
	}
	c.Start = clamp(c.Start, 0, n)
	c.End = clamp(c.End, 0, n)
	return c
}

// Edit is the outcome of a deletion: the new text, where the caret should
// land once the control has taken the new value, and what was removed.
type Edit struct {
	Text       string
	Caret      int
	Removed    Span
	Structural bool
}

// Backspace deletes backwards from cur. A selection is removed as is. With a
// plain caret, a whole token ending at the caret is removed together with its
// operator; otherwise one rune goes. It reports false when nothing changes.
func Backspace(text string, cur CursorState) (Edit, bool) {
	runes := []rune(text)
	cur = cur.normalize(len(runes))
	if cur.HasSelection() {
		return cut(runes, Span{Start: cur.Start, End: cur.End}, cur.Start, false), true
	}
	if cur.Start == 0 {
		return Edit{}, false
	}
	if span, ok := MatchTrailingToken(string(runes[:cur.Start])); ok {
		return cut(runes, span, span.Start, true), true
	}
	return cut(runes, Span{Start: cur.Start - 1, End: cur.Start}, cur.Start-1, false), true
}

// Delete deletes forwards from cur. A selection is removed as is. With a
// plain caret, a whole token starting at the caret is removed and the caret
// stays put; otherwise one rune goes. It reports false when nothing changes.
func Delete(text string, cur CursorState) (Edit, bool) {
	runes := []rune(text)
	cur = cur.normalize(len(runes))
	if cur.HasSelection() {
		return cut(runes, Span{Start: cur.Start, End: cur.End}, cur.Start, false), true
	}
	if cur.Start >= len(runes) {
		return Edit{}, false
	}
	if span, ok := MatchLeadingToken(string(runes[cur.Start:])); ok {
		span = Span{Start: cur.Start + span.Start, End: cur.Start + span.End}
		return cut(runes, span, cur.Start, true), true
	}
	return cut(runes, Span{Start: cur.Start, End: cur.Start + 1}, cur.Start, false), true
}

func cut(runes []rune, span Span, caret int, structural bool) Edit {
	out := make([]rune, 0, len(runes)-span.Len())
	out = append(out, runes[:span.Start]...)
	out = append(out, runes[span.End:]...)
	return Edit{Text: string(out), Caret: caret, Removed: span, Structural: structural}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
