package dispatcher

import (
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/store"
	"github.com/atomicstack/tokencalc/internal/suggest"
)

type Result struct {
	RecordsUpdated bool
	Failed         bool
	Records        int
	Suggestions    int
}

// Dispatcher folds fetch outcomes into the adapter and the input store.
type Dispatcher struct {
	adapter *source.Adapter
	input   store.InputStore
}

func New(a *source.Adapter, s store.InputStore) *Dispatcher {
	return &Dispatcher{adapter: a, input: s}
}

// Handle applies evt. On success the suggestions are recomputed for whatever
// the user has typed while the request was in flight.
func (d *Dispatcher) Handle(evt source.Event) Result {
	var res Result
	if d.adapter == nil {
		return res
	}
	d.adapter.Apply(evt)
	if evt.Err != nil {
		res.Failed = true
		if d.input != nil {
			d.input.SetSuggestions(nil)
		}
		return res
	}
	res.RecordsUpdated = true
	res.Records = d.adapter.Index().Len()
	if d.input != nil {
		matches := suggest.Filter(d.adapter.Index(), d.input.Text())
		d.input.SetSuggestions(matches)
		res.Suggestions = len(matches)
	}
	return res
}
