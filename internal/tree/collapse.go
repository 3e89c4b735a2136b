package tree

import "slices"

// CollapseState is the set of coordinates the user has collapsed. A nil
// *CollapseState behaves as an empty set for reads.
type CollapseState struct {
	set map[string]Coordinate
}

// NewCollapseState returns a state with coords collapsed.
func NewCollapseState(coords ...Coordinate) *CollapseState {
	s := &CollapseState{set: make(map[string]Coordinate, len(coords))}
	for _, c := range coords {
		s.Collapse(c)
	}
	return s
}

// Collapse adds coord. It reports whether the state changed.
func (s *CollapseState) Collapse(coord Coordinate) bool {
	if s.set == nil {
		s.set = make(map[string]Coordinate)
	}
	key := coord.Key()
	if _, ok := s.set[key]; ok {
		return false
	}
	s.set[key] = coord.Clone()
	return true
}

// Expand removes coord. It reports whether the state changed.
func (s *CollapseState) Expand(coord Coordinate) bool {
	key := coord.Key()
	if _, ok := s.set[key]; !ok {
		return false
	}
	delete(s.set, key)
	return true
}

// Toggle flips coord and returns whether it is now collapsed.
func (s *CollapseState) Toggle(coord Coordinate) bool {
	if s.Contains(coord) {
		s.Expand(coord)
		return false
	}
	s.Collapse(coord)
	return true
}

// Contains reports whether coord is collapsed.
func (s *CollapseState) Contains(coord Coordinate) bool {
	if s == nil || len(s.set) == 0 {
		return false
	}
	_, ok := s.set[coord.Key()]
	return ok
}

func (s *CollapseState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// Clear expands everything.
func (s *CollapseState) Clear() {
	for key := range s.set {
		delete(s.set, key)
	}
}

// Coordinates returns the collapsed coordinates in pre-order.
func (s *CollapseState) Coordinates() []Coordinate {
	if s == nil {
		return nil
	}
	out := make([]Coordinate, 0, len(s.set))
	for _, c := range s.set {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b Coordinate) int { return a.Compare(b) })
	return out
}

// Clone returns an independent copy. Cloning nil yields an empty state.
func (s *CollapseState) Clone() *CollapseState {
	out := &CollapseState{set: make(map[string]Coordinate, s.Len())}
	if s == nil {
		return out
	}
	for key, c := range s.set {
		out.set[key] = c.Clone()
	}
	return out
}

// Equal reports whether both states hold the same coordinates.
func (s *CollapseState) Equal(other *CollapseState) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil || other == nil {
		return true
	}
	for key := range s.set {
		if _, ok := other.set[key]; !ok {
			return false
		}
	}
	return true
}

// CollapseAtDepth collapses every node with children whose coordinate has the
// given depth (1 = children of the root). Depths below 1 yield an empty state.
func CollapseAtDepth(root *Node, depth int) *CollapseState {
	s := NewCollapseState()
	if depth < 1 {
		return s
	}
	Walk(root, func(n *Node, coord Coordinate) bool {
		if coord.Depth() == depth {
			if n.HasChildren() {
				s.Collapse(coord)
			}
			return false
		}
		return true
	})
	return s
}

// CollapseAll collapses every node that has children.
func CollapseAll(root *Node) *CollapseState {
	s := NewCollapseState()
	Walk(root, func(n *Node, coord Coordinate) bool {
		if n.HasChildren() {
			s.Collapse(coord)
		}
		return true
	})
	return s
}
