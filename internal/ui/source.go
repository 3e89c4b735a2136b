package ui

import (
	"fmt"

	"github.com/atomicstack/pathtree/internal/logging"
	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForSourceEvent(s *source.Stream) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-s.Events()
		if !ok {
			return sourceDoneMsg{}
		}
		return sourceEventMsg{event: evt}
	}
}

type sourceEventMsg struct {
	event source.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleSourceEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sourceEventMsg)
	if !ok {
		return nil
	}
	m.applySourceEvent(eventMsg.event)
	if m.stream != nil {
		return waitForSourceEvent(m.stream)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(tea.Msg) tea.Cmd {
	m.stream = nil
	m.loading = false
	return nil
}

func (m *Model) applySourceEvent(evt source.Event) {
	var anchor tree.Coordinate
	if m.visible > 0 {
		anchor = m.cursorCoord()
	}
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = fmt.Sprintf("source: %v", res.Err)
	}
	if res.Done {
		m.loading = false
	}
	if !res.Changed() {
		return
	}
	m.seedCollapsed()
	m.refresh()
	if anchor != nil {
		m.restoreCursor(anchor)
	}
}

// restoreCursor puts the cursor back on coord. When coord sits inside a
// folded subtree the cursor lands on the outermost collapsed ancestor, which
// is always visible.
func (m *Model) restoreCursor(coord tree.Coordinate) {
	if coord == nil || coord.IsRoot() {
		return
	}
	target := coord
	for _, folded := range m.collapsed.Coordinates() {
		if len(folded) < len(coord) && coord.HasPrefix(folded) {
			target = folded
			break
		}
	}
	if idx, ok := tree.IndexOf(m.root, m.collapsed, target); ok {
		m.view.SetCursor(idx)
		m.syncViewport()
	}
}
