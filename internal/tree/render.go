package tree

const (
	ConnectorTee             = "├─ "
	ConnectorCorner          = "└─ "
	ConnectorTeeCollapsed    = "├⊞ "
	ConnectorCornerCollapsed = "└⊞ "

	ContinueBar   = "│  "
	ContinueBlank = "   "
)

// Line is one rendered row: Prefix + Connector + Label.
type Line struct {
	Prefix      string
	Connector   string
	Label       string
	Coord       Coordinate
	Collapsed   bool
	HasChildren bool
}

func (l Line) String() string {
	return l.Prefix + l.Connector + l.Label
}

// Depth returns the depth of the node that produced l.
func (l Line) Depth() int {
	return l.Coord.Depth()
}

// connector picks the glyph for a node from its sibling position.
func connector(last, collapsed bool) string {
	switch {
	case last && collapsed:
		return ConnectorCornerCollapsed
	case last:
		return ConnectorCorner
	case collapsed:
		return ConnectorTeeCollapsed
	default:
		return ConnectorTee
	}
}

// continuation is appended to the ancestor prefix for the children of a node.
func continuation(last bool) string {
	if last {
		return ContinueBlank
	}
	return ContinueBar
}

// frame is a node whose children are still being emitted.
type frame struct {
	node   *Node
	coord  Coordinate
	prefix string
	next   int
}

// Lines yields the visible rows of a tree in pre-order, one per call to Next.
// Only the current descent path is held in memory, so a consumer that stops
// early never pays for the rest of the tree.
//
// The tree and collapse state must not change while a Lines is in use.
type Lines struct {
	collapsed *CollapseState
	stack     []frame
}

// NewLines starts a traversal of root. The root itself produces no line; if
// the root coordinate is collapsed nothing is visible at all.
func NewLines(root *Node, collapsed *CollapseState) *Lines {
	l := &Lines{collapsed: collapsed}
	if root != nil && !collapsed.Contains(Coordinate{}) {
		l.stack = append(l.stack, frame{node: root, coord: Coordinate{}})
	}
	return l
}

// Next returns the next visible line, or false once the traversal is done.
func (l *Lines) Next() (Line, bool) {
	for len(l.stack) > 0 {
		top := &l.stack[len(l.stack)-1]
		if top.next >= len(top.node.Children) {
			l.stack = l.stack[:len(l.stack)-1]
			continue
		}
		idx := top.next
		top.next++
		child := top.node.Children[idx]
		last := top.next == len(top.node.Children)
		coord := top.coord.Child(idx)
		collapsed := l.collapsed.Contains(coord)
		line := Line{
			Prefix:      top.prefix,
			Connector:   connector(last, collapsed),
			Label:       child.Value,
			Coord:       coord,
			Collapsed:   collapsed,
			HasChildren: child.HasChildren(),
		}
		if !collapsed && child.HasChildren() {
			// top is invalid after this append.
			l.stack = append(l.stack, frame{
				node:   child,
				coord:  coord,
				prefix: line.Prefix + continuation(last),
			})
		}
		return line, true
	}
	return Line{}, false
}

// Skip advances past n lines and reports how many were actually skipped.
func (l *Lines) Skip(n int) int {
	skipped := 0
	for skipped < n {
		if _, ok := l.Next(); !ok {
			break
		}
		skipped++
	}
	return skipped
}

// Render materialises every visible line as text.
func Render(root *Node, collapsed *CollapseState) []string {
	var out []string
	it := NewLines(root, collapsed)
	for {
		line, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, line.String())
	}
}

// Window returns at most limit lines starting at visible index offset. A
// limit <= 0 returns everything after offset.
func Window(root *Node, collapsed *CollapseState, offset, limit int) []Line {
	it := NewLines(root, collapsed)
	if offset > 0 {
		it.Skip(offset)
	}
	var out []Line
	for limit <= 0 || len(out) < limit {
		line, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}
