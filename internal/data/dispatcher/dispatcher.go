// Package dispatcher applies source batches to the tree.
package dispatcher

import (
	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/tree"
)

// Result describes the effect of one source event.
type Result struct {
	Ingested int
	Added    int
	Done     bool
	Err      error
}

// Changed reports whether the tree grew.
func (r Result) Changed() bool {
	return r.Added > 0
}

// Dispatcher owns ingestion into a single tree. Ingestion only ever appends,
// so coordinates handed out before a batch remain valid after it.
type Dispatcher struct {
	root      *tree.Node
	separator string
	lines     int
	nodes     int
}

func New(root *tree.Node, separator string) *Dispatcher {
	if separator == "" {
		separator = tree.DefaultSeparator
	}
	return &Dispatcher{root: root, separator: separator, nodes: root.Size()}
}

func (d *Dispatcher) Handle(evt source.Event) Result {
	res := Result{Done: evt.Done, Err: evt.Err}
	if len(evt.Lines) == 0 {
		return res
	}
	res.Added = tree.IngestAll(d.root, evt.Lines, d.separator)
	res.Ingested = len(evt.Lines)
	d.lines += res.Ingested
	d.nodes += res.Added
	events.Tree.Ingest(res.Ingested, d.nodes)
	return res
}

// Lines returns the number of input lines ingested so far.
func (d *Dispatcher) Lines() int {
	return d.lines
}

// Nodes returns the number of nodes in the tree, kept current without
// walking it.
func (d *Dispatcher) Nodes() int {
	return d.nodes
}
