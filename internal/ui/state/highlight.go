package state

// Highlight tracks which suggestion row is highlighted and which slice of the
// list is visible. Index -1 means no row is highlighted.
type Highlight struct {
	Index          int
	ViewportOffset int
}

// NewHighlight returns a highlight with no active row.
func NewHighlight() Highlight {
	return Highlight{Index: -1}
}

// Active reports whether a row is highlighted within a list of n rows.
func (h Highlight) Active(n int) bool {
	return h.Index >= 0 && h.Index < n
}

// Reset clears the highlight and scrolls back to the top.
func (h *Highlight) Reset() {
	h.Index = -1
	h.ViewportOffset = 0
}

// Clear drops the highlight but keeps the scroll position.
func (h *Highlight) Clear() bool {
	if h.Index == -1 {
		return false
	}
	h.Index = -1
	return true
}

// Down moves one row down, stopping at the last row.
func (h *Highlight) Down(n int) bool {
	if n == 0 {
		return false
	}
	old := h.Index
	if h.Index < n-1 {
		h.Index++
	}
	if h.Index >= n {
		h.Index = n - 1
	}
	return h.Index != old
}

// Up moves one row up. From the first row it returns to no highlight.
func (h *Highlight) Up(n int) bool {
	if n == 0 || h.Index < 0 {
		return false
	}
	if h.Index >= n {
		h.Index = n - 1
		return true
	}
	h.Index--
	return true
}

// Set highlights row i when it exists.
func (h *Highlight) Set(i, n int) bool {
	if i < 0 || i >= n || i == h.Index {
		return false
	}
	h.Index = i
	return true
}

// Home highlights the first row.
func (h *Highlight) Home(n int) bool {
	if n == 0 {
		return false
	}
	old := h.Index
	h.Index = 0
	return old != h.Index
}

// End highlights the last row.
func (h *Highlight) End(n int) bool {
	if n == 0 {
		return false
	}
	old := h.Index
	h.Index = n - 1
	return old != h.Index
}

// PageUp moves up by one page, stopping at the first row.
func (h *Highlight) PageUp(n, maxVisible int) bool {
	return h.moveBy(n, -pageSize(n, maxVisible))
}

// PageDown moves down by one page, stopping at the last row.
func (h *Highlight) PageDown(n, maxVisible int) bool {
	return h.moveBy(n, pageSize(n, maxVisible))
}

func (h *Highlight) moveBy(n, delta int) bool {
	if n == 0 {
		return false
	}
	old := h.Index
	if h.Index < 0 {
		h.Index = 0
		if delta > 0 {
			delta--
		}
	}
	h.Index = clampInt(h.Index+delta, 0, n-1)
	return h.Index != old
}

func pageSize(total, maxVisible int) int {
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the highlighted row stays on
// screen. Without a highlight the offset is only clamped.
func (h *Highlight) EnsureVisible(n, maxVisible int) {
	if n == 0 {
		h.Index = -1
		h.ViewportOffset = 0
		return
	}
	if h.Index >= n {
		h.Index = n - 1
	}
	if maxVisible <= 0 {
		h.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	h.ViewportOffset = clampInt(h.ViewportOffset, 0, maxOffset)
	if h.Index < 0 {
		return
	}
	if h.Index < h.ViewportOffset {
		h.ViewportOffset = h.Index
	}
	if upper := h.ViewportOffset + maxVisible - 1; h.Index > upper {
		h.ViewportOffset = clampInt(h.Index-maxVisible+1, 0, maxOffset)
	}
}
