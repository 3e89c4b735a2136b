package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/tree"
)

func TestHandleIngestsBatches(t *testing.T) {
	root := tree.New()
	d := New(root, "")
	res := d.Handle(source.Event{Lines: []string{"a/b/c", "a/b/d"}})
	if !res.Changed() || res.Ingested != 2 {
		t.Fatalf("expected 2 lines ingested, got %#v", res)
	}
	res = d.Handle(source.Event{Lines: []string{"a/e"}})
	if res.Ingested != 1 || d.Lines() != 3 {
		t.Fatalf("expected running total 3, got %d", d.Lines())
	}
	if res.Added != 1 || d.Nodes() != 5 {
		t.Fatalf("expected 5 nodes after adding e, got %d (added %d)", d.Nodes(), res.Added)
	}
	got := tree.Render(root, nil)
	if len(got) != 5 || got[4] != "   └─ e" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestHandlePassesThroughErrorsAndDone(t *testing.T) {
	d := New(tree.New(), "/")
	boom := errors.New("boom")
	res := d.Handle(source.Event{Err: boom})
	if res.Changed() || !errors.Is(res.Err, boom) {
		t.Fatalf("expected error passthrough, got %#v", res)
	}
	if res := d.Handle(source.Event{Done: true}); !res.Done {
		t.Fatalf("expected done flag, got %#v", res)
	}
}

func TestNodesCountsPrefilledTree(t *testing.T) {
	root := tree.Build([]string{"a/b", "c"}, "/")
	d := New(root, "/")
	if d.Nodes() != 3 {
		t.Fatalf("expected 3 existing nodes, got %d", d.Nodes())
	}
	res := d.Handle(source.Event{Lines: []string{"c/d", "a/x"}})
	if res.Added != 3 || d.Nodes() != 6 || d.Nodes() != root.Size() {
		t.Fatalf("expected running count to track Size, got %d vs %d", d.Nodes(), root.Size())
	}
}
