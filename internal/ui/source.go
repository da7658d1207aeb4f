package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tokencalc/internal/logging"
	"github.com/atomicstack/tokencalc/internal/logging/events"
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// suggestionsLoadedMsg carries the outcome of the suggestion fetch.
type suggestionsLoadedMsg struct {
	event source.Event
}

// startFetch requests the suggestion list. It returns nil when the list was
// already requested this session.
func (m *Model) startFetch() tea.Cmd {
	if m.adapter == nil || !m.adapter.Begin() {
		return nil
	}
	events.Suggest.FetchStart(m.adapter.Endpoint())
	adapter, ctx := m.adapter, m.ctx
	return m.bus.Execute(command.Request{
		ID:    "suggestions:fetch",
		Label: "fetch suggestions",
		Run: func() tea.Msg {
			return suggestionsLoadedMsg{event: adapter.Fetch(ctx)}
		},
	})
}

func (m *Model) handleSuggestionsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(suggestionsLoadedMsg)
	if !ok {
		return nil
	}
	res := m.dispatcher.Handle(loaded.event)
	m.highlight.Reset()
	if res.Failed {
		err := loaded.event.Err
		m.errMsg = err.Error()
		events.Suggest.FetchError(err)
		logging.Error(fmt.Errorf("fetching suggestions: %w", err))
		var fetchErr *source.FetchError
		if errors.As(err, &fetchErr) && fetchErr.Err != nil {
			logging.Warn("suggestion fetch failed", "status", fetchErr.Status, "cause", fetchErr.Err.Error())
		}
		return nil
	}
	m.errMsg = ""
	events.Suggest.FetchSuccess(res.Records)
	m.syncViewport()
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.adapter == nil || !m.adapter.Loading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}
