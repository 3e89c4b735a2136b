package events

import "github.com/atomicstack/pathtree/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type SearchReason string

const (
	SearchReasonEscape SearchReason = "escape"
	SearchReasonSubmit SearchReason = "submit"
)

var (
	UI      = UITracer{}
	Search  = SearchTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Click(row, index int) {
	logging.Trace("ui.click", map[string]interface{}{"row": row, "index": index})
}

func (UITracer) Help(visible bool) {
	logging.Trace("ui.help", map[string]interface{}{"visible": visible})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Close(query string, reason SearchReason) {
	logging.Trace("search.close", map[string]interface{}{"query": query, "reason": string(reason)})
}

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}

func (SearchTracer) WordBackspace(query string) {
	logging.Trace("search.word-backspace", map[string]interface{}{"query": query})
}

func (SearchTracer) Cursor(pos int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) CursorWord(pos int) {
	logging.Trace("search.cursor-word", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) Append(query string) {
	logging.Trace("search.append", map[string]interface{}{"query": query})
}

func (SearchTracer) Backspace(query string) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query})
}

func (SearchTracer) Match(query string, index int) {
	logging.Trace("search.match", map[string]interface{}{"query": query, "index": index})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
