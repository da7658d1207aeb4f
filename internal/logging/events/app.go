package events

import "github.com/atomicstack/tokencalc/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Eval(text, result string) {
	logging.Trace("app.eval", map[string]interface{}{"text": text, "result": result})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
