package source

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/tokencalc/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	records []suggest.Record
	err     error
	calls   int
}

func (f *staticFetcher) Fetch(context.Context) ([]suggest.Record, error) {
	f.calls++
	return f.records, f.err
}

func TestAdapterBeginIsOneShot(t *testing.T) {
	a := NewAdapter(&staticFetcher{}, suggest.ModeSubstring)
	assert.Equal(t, StatusIdle, a.Status())

	require.True(t, a.Begin())
	assert.True(t, a.Loading())
	assert.False(t, a.Begin())

	a.Apply(Event{})
	assert.Equal(t, StatusReady, a.Status())
	assert.False(t, a.Begin(), "a finished fetch is never repeated")
}

func TestAdapterApplySuccessBuildsIndex(t *testing.T) {
	fetcher := &staticFetcher{records: []suggest.Record{
		{Name: "Apple", Value: "5"},
		{Name: "Pineapple", Value: "7"},
	}}
	a := NewAdapter(fetcher, suggest.ModeSubstring)
	require.True(t, a.Begin())

	evt := a.Fetch(context.Background())
	assert.Equal(t, StatusLoading, a.Status(), "Fetch leaves state alone")
	a.Apply(evt)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, StatusReady, a.Status())
	assert.NoError(t, a.Err())
	require.NotNil(t, a.Index())
	assert.Len(t, a.Records(), 2)
	assert.Len(t, a.Index().Match("apple"), 2)
}

func TestAdapterApplyFailure(t *testing.T) {
	boom := &FetchError{Message: "Not found", Status: 404}
	a := NewAdapter(&staticFetcher{err: boom}, suggest.ModeSubstring)
	require.True(t, a.Begin())

	a.Apply(a.Fetch(context.Background()))

	assert.Equal(t, StatusFailed, a.Status())
	assert.Equal(t, "failed", a.Status().String())
	assert.True(t, errors.Is(a.Err(), boom))
	assert.Nil(t, a.Index())
	assert.Nil(t, a.Records())
}

func TestAdapterWithoutFetcher(t *testing.T) {
	a := NewAdapter(nil, suggest.ModeSubstring)
	evt := a.Fetch(context.Background())
	require.Error(t, evt.Err)
	assert.Equal(t, "Error fetching data", evt.Err.Error())
}

func TestAdapterEndpoint(t *testing.T) {
	assert.Equal(t, "http://example.invalid/list", NewAdapter(NewClient("http://example.invalid/list"), suggest.ModeSubstring).Endpoint())
	assert.Empty(t, NewAdapter(&staticFetcher{}, suggest.ModeSubstring).Endpoint())
	assert.Empty(t, NewAdapter(nil, suggest.ModeSubstring).Endpoint())
}
