package events

import "github.com/atomicstack/pathtree/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Ingest(lines, nodes int) {
	logging.Trace("tree.ingest", map[string]interface{}{"lines": lines, "nodes": nodes})
}

func (TreeTracer) Collapse(index int, coord, label string) {
	logging.Trace("tree.collapse", map[string]interface{}{"index": index, "coord": coord, "label": label})
}

func (TreeTracer) Expand(index int, coord, label string) {
	logging.Trace("tree.expand", map[string]interface{}{"index": index, "coord": coord, "label": label})
}

func (TreeTracer) ExpandAll() {
	logging.Trace("tree.expand-all", nil)
}

func (TreeTracer) CollapseAll(collapsed int) {
	logging.Trace("tree.collapse-all", map[string]interface{}{"collapsed": collapsed})
}

func (TreeTracer) ResolveError(index int, err error) {
	logging.Trace("tree.resolve.error", map[string]interface{}{"index": index, "error": err.Error()})
}
