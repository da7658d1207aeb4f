package ui

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/atomicstack/tokencalc/internal/logging"
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/store"
	"github.com/atomicstack/tokencalc/internal/suggest"
	uistate "github.com/atomicstack/tokencalc/internal/ui/state"
)

type staticFetcher struct {
	records []suggest.Record
	err     error
}

func (f staticFetcher) Fetch(context.Context) ([]suggest.Record, error) {
	return f.records, f.err
}

var fruit = []suggest.Record{
	{ID: "1", Name: "Apple", Category: "fruit", Value: "5"},
	{ID: "2", Name: "Orange", Category: "fruit", Value: "3"},
	{ID: "3", Name: "Banana", Category: "fruit", Value: "2"},
	{ID: "4", Name: "Pineapple", Category: "fruit", Value: "7"},
}

func useTempLog(t *testing.T) {
	t.Helper()
	prev := logging.Path()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure(prev) })
}

func newTestModel(t *testing.T, fetcher source.Fetcher, opts Options) *Model {
	t.Helper()
	useTempLog(t)
	adapter := source.NewAdapter(fetcher, suggest.ModeSubstring)
	return NewModel(opts, adapter, store.NewInputStore(nil))
}

// newStartedHarness returns a harness whose suggestion fetch has completed.
func newStartedHarness(t *testing.T, records []suggest.Record, opts Options) *Harness {
	t.Helper()
	h := NewHarness(newTestModel(t, staticFetcher{records: records}, opts))
	h.Start()
	return h
}

func suggestionNames(m *Model) []string {
	list := m.input.Suggestions()
	names := make([]string, len(list))
	for i, r := range list {
		names[i] = r.Name
	}
	return names
}

func expectText(t *testing.T, m *Model, want string) {
	t.Helper()
	if got := m.Text(); got != want {
		t.Fatalf("expected text %q, got %q", want, got)
	}
}

func expectCaret(t *testing.T, m *Model, want int) {
	t.Helper()
	if got := m.Caret(); got != uistate.At(want) {
		t.Fatalf("expected collapsed caret at %d, got %+v", want, got)
	}
}

func expectHighlight(t *testing.T, m *Model, want int) {
	t.Helper()
	if got := m.highlight.Index; got != want {
		t.Fatalf("expected highlight %d, got %d", want, got)
	}
}

func expectResult(t *testing.T, m *Model, want string) {
	t.Helper()
	if got := m.input.Result().String(); got != want {
		t.Fatalf("expected result %q, got %q", want, got)
	}
}

func expectSuggestions(t *testing.T, m *Model, want ...string) {
	t.Helper()
	if got := suggestionNames(m); !slices.Equal(got, want) {
		t.Fatalf("expected suggestions %v, got %v", want, got)
	}
}
