package events

import "github.com/atomicstack/pathtree/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Open(name string, follow bool) {
	logging.Trace("source.open", map[string]interface{}{"source": name, "follow": follow})
}

func (SourceTracer) Batch(name string, lines int) {
	logging.Trace("source.batch", map[string]interface{}{"source": name, "lines": lines})
}

func (SourceTracer) EOF(name string, total int) {
	logging.Trace("source.eof", map[string]interface{}{"source": name, "total": total})
}

func (SourceTracer) Follow(name, op string) {
	logging.Trace("source.follow", map[string]interface{}{"source": name, "op": op})
}

func (SourceTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"source": name, "error": err.Error()})
}
