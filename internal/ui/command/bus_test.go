package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ n int }

func TestExecuteRunsRequest(t *testing.T) {
	cmd := New().Execute(Request{ID: "fetch", Label: "suggestions", Run: func() tea.Msg {
		return doneMsg{n: 3}
	}})
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.n != 3 {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteWithoutRunner(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
