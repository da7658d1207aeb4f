package events

import "github.com/atomicstack/tokencalc/internal/logging"

type InputTracer struct{}

type SuggestTracer struct{}

type CalcTracer struct{}

type CommandTracer struct{}

var (
	Input   = InputTracer{}
	Suggest = SuggestTracer{}
	Calc    = CalcTracer{}
	Command = CommandTracer{}
)

func (InputTracer) Insert(text string, caret int) {
	logging.Trace("input.insert", map[string]interface{}{"text": text, "caret": caret})
}

func (InputTracer) Backspace(text string, caret int, structural bool) {
	logging.Trace("input.backspace", map[string]interface{}{"text": text, "caret": caret, "structural": structural})
}

func (InputTracer) Delete(text string, caret int, structural bool) {
	logging.Trace("input.delete", map[string]interface{}{"text": text, "caret": caret, "structural": structural})
}

func (InputTracer) WordBackspace(text string, caret int) {
	logging.Trace("input.word-backspace", map[string]interface{}{"text": text, "caret": caret})
}

func (InputTracer) Cleared() {
	logging.Trace("input.clear", nil)
}

func (InputTracer) Splice(name, value, text string) {
	logging.Trace("input.splice", map[string]interface{}{"name": name, "value": value, "text": text})
}

func (InputTracer) Caret(pos, anchor int) {
	logging.Trace("input.caret", map[string]interface{}{"caret": pos, "anchor": anchor})
}

func (SuggestTracer) FetchStart(endpoint string) {
	logging.Trace("suggest.fetch.start", map[string]interface{}{"endpoint": endpoint})
}

func (SuggestTracer) FetchSuccess(records int) {
	logging.Trace("suggest.fetch.success", map[string]interface{}{"records": records})
}

func (SuggestTracer) FetchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("suggest.fetch.error", map[string]interface{}{"error": err.Error()})
}

func (SuggestTracer) Filter(term string, matches int) {
	logging.Trace("suggest.filter", map[string]interface{}{"term": term, "matches": matches})
}

func (SuggestTracer) Highlight(index int) {
	logging.Trace("suggest.highlight", map[string]interface{}{"index": index})
}

func (CalcTracer) Result(text, result string) {
	logging.Trace("calc.result", map[string]interface{}{"text": text, "result": result})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
