package tree

import (
	"errors"
	"testing"
)

func TestResolveScenario(t *testing.T) {
	root := scenarioTree()
	want := []Coordinate{{0}, {0, 0}, {0, 0, 0}, {0, 0, 1}, {0, 1}}
	for i, expected := range want {
		got, err := Resolve(root, nil, i)
		if err != nil {
			t.Fatalf("unexpected error for index %d: %v", i, err)
		}
		if !got.Equal(expected) {
			t.Fatalf("index %d: expected %v, got %v", i, expected, got)
		}
	}
}

func TestResolveSkipsCollapsedSubtrees(t *testing.T) {
	root := scenarioTree()
	collapsed := NewCollapseState(Coordinate{0, 0})
	got, err := Resolve(root, collapsed, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(Coordinate{0, 1}) {
		t.Fatalf("expected e at [0 1], got %v", got)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	root := scenarioTree()
	for _, idx := range []int{-1, 5, 100} {
		if _, err := Resolve(root, nil, idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if _, err := Resolve(root, NewCollapseState(Coordinate{0}), 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected out of range behind collapsed node, got %v", err)
	}
	if _, err := Resolve(New(), nil, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected out of range for empty tree, got %v", err)
	}
}

func TestCountVisible(t *testing.T) {
	root := scenarioTree()
	if n := CountVisible(root, nil); n != 5 {
		t.Fatalf("expected 5 visible, got %d", n)
	}
	if n := CountVisible(root, NewCollapseState(Coordinate{0, 0})); n != 3 {
		t.Fatalf("expected 3 visible, got %d", n)
	}
	if n := CountVisible(root, NewCollapseState(Coordinate{})); n != 0 {
		t.Fatalf("expected collapsed root to show nothing, got %d", n)
	}
}

func TestIndexOfInvertsResolve(t *testing.T) {
	root := scenarioTree()
	collapsed := NewCollapseState(Coordinate{0, 0})
	if idx, ok := IndexOf(root, collapsed, Coordinate{0, 1}); !ok || idx != 2 {
		t.Fatalf("expected e at index 2, got %d/%v", idx, ok)
	}
	if _, ok := IndexOf(root, collapsed, Coordinate{0, 0, 1}); ok {
		t.Fatalf("expected hidden node to have no index")
	}
	if _, ok := IndexOf(root, nil, Coordinate{0, 7}); ok {
		t.Fatalf("expected invalid coordinate to have no index")
	}
}

func TestLineAt(t *testing.T) {
	n, coord, err := LineAt(scenarioTree(), nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Value != "d" || !coord.Equal(Coordinate{0, 0, 1}) {
		t.Fatalf("expected d at [0 0 1], got %q at %v", n.Value, coord)
	}
}
