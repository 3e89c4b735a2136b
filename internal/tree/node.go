// Package tree builds an ordered n-ary tree from separator-delimited paths and
// renders it as box-drawing lines while honouring a set of collapsed nodes.
//
// Nodes never point back at their parents. Every traversal starts at the root
// and carries its context (prefix strings, coordinates) downward, so a
// Coordinate is the only way to address a node from outside the tree.
package tree

import "strings"

// DefaultSeparator splits input paths when no separator is configured.
const DefaultSeparator = "/"

// Node is one labeled entry of the tree. The root has an empty label and only
// serves as the container for the top-level path segments.
type Node struct {
	Value    string
	Children []*Node
}

// New returns an empty root node.
func New() *Node {
	return &Node{}
}

// AddChild appends a new child carrying value and returns it.
func (n *Node) AddChild(value string) *Node {
	child := &Node{Value: value}
	n.Children = append(n.Children, child)
	return child
}

// LastChild returns the most recently appended child, or nil.
func (n *Node) LastChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// Size counts the nodes below n, excluding n itself.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	total := 0
	for _, child := range n.Children {
		total += 1 + child.Size()
	}
	return total
}

// Walk visits every node below root in pre-order. Returning false from fn
// skips the node's subtree.
func Walk(root *Node, fn func(n *Node, coord Coordinate) bool) {
	if root == nil {
		return
	}
	walk(root, Coordinate{}, fn)
}

func walk(n *Node, coord Coordinate, fn func(*Node, Coordinate) bool) {
	for i, child := range n.Children {
		cc := coord.Child(i)
		if !fn(child, cc) {
			continue
		}
		walk(child, cc, fn)
	}
}

// NodeAt follows coord from root. The empty coordinate addresses root.
func NodeAt(root *Node, coord Coordinate) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	n := root
	for _, idx := range coord {
		if idx < 0 || idx >= len(n.Children) {
			return nil, false
		}
		n = n.Children[idx]
	}
	return n, true
}

// PathAt joins the labels along coord with sep. It returns "" when coord does
// not address a node.
func PathAt(root *Node, coord Coordinate, sep string) string {
	if root == nil {
		return ""
	}
	labels := make([]string, 0, len(coord))
	n := root
	for _, idx := range coord {
		if idx < 0 || idx >= len(n.Children) {
			return ""
		}
		n = n.Children[idx]
		labels = append(labels, n.Value)
	}
	return strings.Join(labels, sep)
}
