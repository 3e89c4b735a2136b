package tree

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Coordinate addresses a node by the child index taken at each depth,
// starting from the root's children. The empty Coordinate is the root.
type Coordinate []int

// Key returns a string usable as a map key; equal coordinates have equal keys.
func (c Coordinate) Key() string {
	if len(c) == 0 {
		return ""
	}
	var b strings.Builder
	for i, idx := range c {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

func (c Coordinate) String() string {
	return fmt.Sprint([]int(c))
}

// Depth is the number of steps from the root; root-level children have depth 1.
func (c Coordinate) Depth() int {
	return len(c)
}

// IsRoot reports whether c addresses the root.
func (c Coordinate) IsRoot() bool {
	return len(c) == 0
}

// Child returns a new coordinate extending c by idx. c is not modified.
func (c Coordinate) Child(idx int) Coordinate {
	out := make(Coordinate, len(c)+1)
	copy(out, c)
	out[len(c)] = idx
	return out
}

// Parent returns the coordinate one level up. The root has no parent.
func (c Coordinate) Parent() (Coordinate, bool) {
	if len(c) == 0 {
		return nil, false
	}
	return slices.Clone(c[:len(c)-1]), true
}

// Clone returns an independent copy of c.
func (c Coordinate) Clone() Coordinate {
	out := make(Coordinate, len(c))
	copy(out, c)
	return out
}

// Equal compares elementwise.
func (c Coordinate) Equal(other Coordinate) bool {
	return slices.Equal(c, other)
}

// Compare orders coordinates lexicographically, which is pre-order.
func (c Coordinate) Compare(other Coordinate) int {
	return slices.Compare(c, other)
}

// HasPrefix reports whether c lies inside the subtree addressed by prefix.
func (c Coordinate) HasPrefix(prefix Coordinate) bool {
	return len(prefix) <= len(c) && slices.Equal(c[:len(prefix)], prefix)
}
