package events

import "github.com/atomicstack/pathtree/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Print(source string, read, rendered int) {
	logging.Trace("app.print", map[string]interface{}{"source": source, "read": read, "rendered": rendered})
}
