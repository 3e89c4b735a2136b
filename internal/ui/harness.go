package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a Model without a terminal. Commands are executed inline
// until the chain settles, which drains an attached stream completely.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness wraps model. The search cursor is pinned so no blink timer
// ever lands in the command chain.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.searchCursor.SetMode(cursor.CursorStatic)
	}
	return &Harness{model: model}
}

// Start runs the model's Init command.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.run(h.model.Init())
}

// Send routes msg through Update and runs whatever it returns.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || msg == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

// Press sends a single special key such as tea.KeyEnter.
func (h *Harness) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// Type sends s one rune at a time.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.Send(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current rendering.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the wrapped model.
func (h *Harness) Model() *Model {
	return h.model
}
