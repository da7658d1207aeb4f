package source

import (
	"context"

	"github.com/atomicstack/tokencalc/internal/suggest"
)

// Status is the lifecycle of the one-shot fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Event carries the outcome of a fetch back to the event loop.
type Event struct {
	Records []suggest.Record
	Err     error
}

// Adapter owns the cached candidate list for a session. The fetch itself may
// run off the event loop; the adapter only changes through Begin and Apply,
// which the event loop calls.
type Adapter struct {
	fetcher Fetcher
	mode    suggest.Mode
	status  Status
	index   *suggest.Index
	err     error
}

// NewAdapter wraps fetcher; records are indexed for mode once they arrive.
func NewAdapter(fetcher Fetcher, mode suggest.Mode) *Adapter {
	return &Adapter{fetcher: fetcher, mode: mode}
}

// Begin marks the fetch as requested. It reports false when a fetch was
// already requested this session, so the list is loaded at most once.
func (a *Adapter) Begin() bool {
	if a.status != StatusIdle {
		return false
	}
	a.status = StatusLoading
	return true
}

// Fetch runs the request and packages the outcome. It does not touch the
// adapter's state.
func (a *Adapter) Fetch(ctx context.Context) Event {
	if a.fetcher == nil {
		return Event{Err: &FetchError{Message: genericFetchError, Err: errNoEndpoint}}
	}
	records, err := a.fetcher.Fetch(ctx)
	return Event{Records: records, Err: err}
}

// Apply stores the outcome of a fetch.
func (a *Adapter) Apply(evt Event) {
	if evt.Err != nil {
		a.status = StatusFailed
		a.err = evt.Err
		a.index = nil
		return
	}
	a.status = StatusReady
	a.err = nil
	a.index = suggest.NewIndex(evt.Records, a.mode)
}

// Endpoint returns the fetcher's URL when it has one.
func (a *Adapter) Endpoint() string {
	if e, ok := a.fetcher.(interface{ Endpoint() string }); ok {
		return e.Endpoint()
	}
	return ""
}

// Status reports where the fetch is.
func (a *Adapter) Status() Status {
	return a.status
}

// Loading reports whether the fetch is still pending.
func (a *Adapter) Loading() bool {
	return a.status == StatusLoading
}

// Err returns the fetch error, if any.
func (a *Adapter) Err() error {
	return a.err
}

// Index returns the cached index, or nil until the records have arrived.
func (a *Adapter) Index() *suggest.Index {
	return a.index
}

// Records returns the cached records.
func (a *Adapter) Records() []suggest.Record {
	if a.index == nil {
		return nil
	}
	return a.index.Records()
}
