package ui

import (
	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/atomicstack/pathtree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.showHelp {
		switch keyMsg.String() {
		case "?", "esc", "q":
			m.toggleHelp()
		}
		return nil
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "esc":
		m.errMsg = ""
		m.forceClearInfo()
	case "up", "k":
		m.moveCursor(m.view.MoveCursorUp)
	case "down", "j":
		m.moveCursor(m.view.MoveCursorDown)
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home", "g":
		m.moveCursor(m.view.MoveCursorHome)
	case "end", "G":
		m.moveCursor(m.view.MoveCursorEnd)
	case "left", "h":
		m.collapseAtCursor()
	case "right", "l":
		m.expandAtCursor()
	case "enter", " ":
		m.toggleAt(m.view.Cursor)
	case "E":
		m.expandAll()
	case "C":
		m.collapseAll()
	case "/":
		m.openSearch()
	case "n":
		m.nextMatch()
	case "y":
		return m.copyPathCmd()
	case "?":
		m.toggleHelp()
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.Cursor(m.view.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	m.moveCursor(func() bool { return m.view.MoveCursorPageUp(m.maxVisibleItems()) })
}

func (m *Model) moveCursorPageDown() {
	m.moveCursor(func() bool { return m.view.MoveCursorPageDown(m.maxVisibleItems()) })
}

func (m *Model) syncViewport() {
	m.view.EnsureCursorVisible(m.maxVisibleItems())
}

// cursorCoord resolves the cursor's line to a coordinate, or nil when the
// view is empty.
func (m *Model) cursorCoord() tree.Coordinate {
	coord, err := tree.Resolve(m.root, m.collapsed, m.view.Cursor)
	if err != nil {
		return nil
	}
	return coord
}

// resolve maps a visible line index to its node, logging failures.
func (m *Model) resolve(index int) (*tree.Node, tree.Coordinate, bool) {
	n, coord, err := tree.LineAt(m.root, m.collapsed, index)
	if err != nil {
		// An empty view has nothing to resolve; anything else is a stale index.
		if m.visible > 0 {
			events.Tree.ResolveError(index, err)
		}
		return nil, nil, false
	}
	return n, coord, true
}

// collapseAt folds the node on line index. Nodes without children cannot be
// folded.
func (m *Model) collapseAt(index int) bool {
	n, coord, ok := m.resolve(index)
	if !ok {
		return false
	}
	if !n.HasChildren() {
		m.setInfo(n.Value + " has no children")
		return false
	}
	if !m.collapsed.Collapse(coord) {
		return false
	}
	events.Tree.Collapse(index, coord.Key(), n.Value)
	m.refresh()
	return true
}

// expandAt unfolds the node on line index.
func (m *Model) expandAt(index int) bool {
	n, coord, ok := m.resolve(index)
	if !ok {
		return false
	}
	if !m.collapsed.Expand(coord) {
		return false
	}
	events.Tree.Expand(index, coord.Key(), n.Value)
	m.refresh()
	return true
}

// toggleAt flips the node on line index. An expanded leaf is refused the
// same way collapseAt refuses it.
func (m *Model) toggleAt(index int) bool {
	n, coord, ok := m.resolve(index)
	if !ok {
		return false
	}
	if !n.HasChildren() && !m.collapsed.Contains(coord) {
		m.setInfo(n.Value + " has no children")
		return false
	}
	if m.collapsed.Toggle(coord) {
		events.Tree.Collapse(index, coord.Key(), n.Value)
	} else {
		events.Tree.Expand(index, coord.Key(), n.Value)
	}
	m.refresh()
	return true
}

// collapseAtCursor folds the node under the cursor. On a leaf or an already
// folded node the cursor moves to the parent line instead.
func (m *Model) collapseAtCursor() {
	n, coord, ok := m.resolve(m.view.Cursor)
	if !ok {
		return
	}
	if n.HasChildren() && !m.collapsed.Contains(coord) {
		m.collapseAt(m.view.Cursor)
		return
	}
	parent, ok := coord.Parent()
	if !ok || parent.IsRoot() {
		return
	}
	if idx, ok := tree.IndexOf(m.root, m.collapsed, parent); ok {
		m.moveCursor(func() bool { return m.view.SetCursor(idx) })
	}
}

// expandAtCursor unfolds the node under the cursor, or steps onto its first
// child when it is already open.
func (m *Model) expandAtCursor() {
	n, coord, ok := m.resolve(m.view.Cursor)
	if !ok {
		return
	}
	if m.collapsed.Contains(coord) {
		m.expandAt(m.view.Cursor)
		return
	}
	if n.HasChildren() {
		m.moveCursor(func() bool { return m.view.SetCursor(m.view.Cursor + 1) })
	}
}

func (m *Model) expandAll() {
	anchor := m.cursorCoord()
	m.collapsed.Clear()
	events.Tree.ExpandAll()
	m.refresh()
	if anchor != nil {
		m.restoreCursor(anchor)
	}
}

func (m *Model) collapseAll() {
	anchor := m.cursorCoord()
	m.collapsed = tree.CollapseAll(m.root)
	events.Tree.CollapseAll(m.collapsed.Len())
	m.refresh()
	if anchor != nil {
		m.restoreCursor(anchor)
	}
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	events.UI.Help(m.showHelp)
}

// handleMouseMsg toggles the node under a left click and scrolls on the wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.showHelp {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(func() bool { return m.view.MoveCursorBy(-wheelStep) })
	case tea.MouseButtonWheelDown:
		m.moveCursor(func() bool { return m.view.MoveCursorBy(wheelStep) })
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		row := ev.Y - m.headerRows()
		rows := m.maxVisibleItems()
		if row < 0 || (rows > 0 && row >= rows) {
			return nil
		}
		index := m.view.Offset + row
		if index >= m.visible {
			return nil
		}
		events.UI.Click(row, index)
		m.view.SetCursor(index)
		m.toggleAt(index)
		m.syncViewport()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}
