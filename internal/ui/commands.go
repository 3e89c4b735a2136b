package ui

import (
	"fmt"

	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/atomicstack/pathtree/internal/tree"
	"github.com/atomicstack/pathtree/internal/ui/command"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// actionResult reports the outcome of a command run through the bus.
type actionResult struct {
	Info string
	Err  error
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

// copyPathCmd copies the full path of the node under the cursor.
func (m *Model) copyPathCmd() tea.Cmd {
	coord, err := tree.Resolve(m.root, m.collapsed, m.view.Cursor)
	if err != nil {
		return nil
	}
	path := tree.PathAt(m.root, coord, m.separator)
	return m.bus.Execute(command.Request{
		ID:    "copy-path",
		Label: path,
		Run: func() tea.Msg {
			if err := writeClipboard(path); err != nil {
				return actionResult{Err: fmt.Errorf("copy %s: %w", path, err)}
			}
			return actionResult{Info: fmt.Sprintf("Copied %s", path)}
		},
	})
}
