package tree

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Resolve for an index the current render
// did not produce.
var ErrIndexOutOfRange = errors.New("line index out of range")

// CountVisible returns the number of lines Render would produce for root.
func CountVisible(root *Node, collapsed *CollapseState) int {
	if root == nil || collapsed.Contains(Coordinate{}) {
		return 0
	}
	total := 0
	for i, child := range root.Children {
		total += countLines(child, Coordinate{i}, collapsed)
	}
	return total
}

// countLines is the number of lines n and its visible descendants produce.
func countLines(n *Node, coord Coordinate, collapsed *CollapseState) int {
	if collapsed.Contains(coord) {
		return 1
	}
	total := 1
	for i, child := range n.Children {
		total += countLines(child, coord.Child(i), collapsed)
	}
	return total
}

// Resolve maps a visible line index (0 is the first line Render emits) to the
// coordinate of the node that produced it.
func Resolve(root *Node, collapsed *CollapseState, index int) (Coordinate, error) {
	if root == nil || index < 0 || collapsed.Contains(Coordinate{}) {
		return nil, outOfRange(root, collapsed, index)
	}
	node := root
	coord := Coordinate{}
	remaining := index
	for {
		descended := false
		for i, child := range node.Children {
			cc := coord.Child(i)
			n := countLines(child, cc, collapsed)
			if remaining >= n {
				remaining -= n
				continue
			}
			if remaining == 0 {
				return cc, nil
			}
			// The child's own line comes before its descendants.
			remaining--
			node = child
			coord = cc
			descended = true
			break
		}
		if !descended {
			return nil, outOfRange(root, collapsed, index)
		}
	}
}

func outOfRange(root *Node, collapsed *CollapseState, index int) error {
	return fmt.Errorf("%w: index %d, %d visible", ErrIndexOutOfRange, index, CountVisible(root, collapsed))
}

// LineAt resolves index and returns the node together with its coordinate.
func LineAt(root *Node, collapsed *CollapseState, index int) (*Node, Coordinate, error) {
	coord, err := Resolve(root, collapsed, index)
	if err != nil {
		return nil, nil, err
	}
	n, _ := NodeAt(root, coord)
	return n, coord, nil
}

// IndexOf is the inverse of Resolve: it returns the visible line index of
// coord, or false when coord is hidden under a collapsed ancestor or does not
// address a node.
func IndexOf(root *Node, collapsed *CollapseState, coord Coordinate) (int, bool) {
	if root == nil || coord.IsRoot() || collapsed.Contains(Coordinate{}) {
		return 0, false
	}
	index := 0
	node := root
	path := Coordinate{}
	for depth, target := range coord {
		if target < 0 || target >= len(node.Children) {
			return 0, false
		}
		if depth > 0 {
			if collapsed.Contains(path) {
				return 0, false
			}
			index++ // the ancestor's own line
		}
		for i := 0; i < target; i++ {
			index += countLines(node.Children[i], path.Child(i), collapsed)
		}
		path = path.Child(target)
		node = node.Children[target]
	}
	return index, true
}
