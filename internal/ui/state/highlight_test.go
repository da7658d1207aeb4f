package state

import "testing"

func TestHighlightDownClampsAtLastRow(t *testing.T) {
	h := NewHighlight()
	if !h.Down(2) || h.Index != 0 {
		t.Fatalf("expected first row, got %d", h.Index)
	}
	if !h.Down(2) || h.Index != 1 {
		t.Fatalf("expected second row, got %d", h.Index)
	}
	if h.Down(2) {
		t.Fatalf("expected no movement past last row")
	}
	if h.Down(0) {
		t.Fatalf("expected no movement on empty list")
	}
}

func TestHighlightUpFloorsAtNone(t *testing.T) {
	h := Highlight{Index: 1}
	if !h.Up(3) || h.Index != 0 {
		t.Fatalf("expected row 0, got %d", h.Index)
	}
	if !h.Up(3) || h.Index != -1 {
		t.Fatalf("expected no highlight, got %d", h.Index)
	}
	if h.Up(3) {
		t.Fatalf("expected no movement below -1")
	}
	if h.Active(3) {
		t.Fatalf("expected inactive highlight")
	}
}

func TestHighlightSetAndClear(t *testing.T) {
	h := NewHighlight()
	if h.Set(3, 3) {
		t.Fatalf("expected out of range set to fail")
	}
	if !h.Set(2, 3) || h.Index != 2 {
		t.Fatalf("expected row 2, got %d", h.Index)
	}
	if h.Set(2, 3) {
		t.Fatalf("expected no change for same row")
	}
	if !h.Clear() || h.Index != -1 {
		t.Fatalf("expected cleared highlight")
	}
	if h.Clear() {
		t.Fatalf("expected second clear to be a no-op")
	}
}

func TestHighlightPaging(t *testing.T) {
	h := NewHighlight()
	if !h.PageDown(5, 2) || h.Index != 1 {
		t.Fatalf("expected row 1 after first page down, got %d", h.Index)
	}
	if !h.PageDown(5, 2) || h.Index != 3 {
		t.Fatalf("expected row 3, got %d", h.Index)
	}
	if !h.PageDown(5, 2) || h.Index != 4 {
		t.Fatalf("expected clamp to 4, got %d", h.Index)
	}
	if !h.PageUp(5, 2) || h.Index != 2 {
		t.Fatalf("expected row 2, got %d", h.Index)
	}
	if !h.Home(5) || h.Index != 0 {
		t.Fatalf("expected home")
	}
	if h.PageUp(5, 2) {
		t.Fatalf("expected no movement above first row")
	}
	if !h.End(5) || h.Index != 4 {
		t.Fatalf("expected end")
	}
}

func TestHighlightEnsureVisible(t *testing.T) {
	h := Highlight{Index: 4}
	h.EnsureVisible(6, 3)
	if h.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", h.ViewportOffset)
	}
	h.Index = 0
	h.EnsureVisible(6, 3)
	if h.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", h.ViewportOffset)
	}
	h.ViewportOffset = 10
	h.Index = -1
	h.EnsureVisible(6, 3)
	if h.ViewportOffset != 3 {
		t.Fatalf("expected clamp to 3, got %d", h.ViewportOffset)
	}
	h.EnsureVisible(0, 3)
	if h.Index != -1 || h.ViewportOffset != 0 {
		t.Fatalf("expected reset on empty list, got %+v", h)
	}
}
