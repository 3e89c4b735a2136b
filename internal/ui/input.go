package ui

import (
	"unicode"

	"github.com/atomicstack/pathtree/internal/logging/events"
	"github.com/atomicstack/pathtree/internal/tree"
	uistate "github.com/atomicstack/pathtree/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "(type to search)"

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) noteSearchCursorChange(before int) {
	if before != m.view.QueryCursorPos() {
		m.searchCursorDirty = true
	}
}

func (m *Model) openSearch() {
	m.searching = true
	m.view.LastCursor = m.view.Cursor
	m.view.SetQuery("", 0)
	m.searchCursorDirty = true
	m.errMsg = ""
	m.forceClearInfo()
	events.Search.Open()
}

// closeSearch leaves search mode. Escape returns the cursor to where the
// search started; submit keeps the match.
func (m *Model) closeSearch(reason events.SearchReason) {
	events.Search.Close(m.view.Query, reason)
	if reason == events.SearchReasonEscape && m.view.LastCursor >= 0 {
		m.view.SetCursor(m.view.LastCursor)
		m.syncViewport()
	}
	m.view.LastCursor = -1
	m.searching = false
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeSearch(events.SearchReasonEscape)
		return nil
	case "enter":
		m.closeSearch(events.SearchReasonSubmit)
		return nil
	case "up":
		m.moveCursor(m.view.MoveCursorUp)
		return nil
	case "down":
		m.moveCursor(m.view.MoveCursorDown)
		return nil
	case "pgup":
		m.moveCursorPageUp()
		return nil
	case "pgdown":
		m.moveCursorPageDown()
		return nil
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	v := m.view
	before := v.QueryCursorPos()
	switch msg.String() {
	case "ctrl+u":
		if v.Query == "" {
			return false
		}
		v.SetQuery("", 0)
		m.noteSearchCursorChange(before)
		events.Search.Cleared()
		return true
	case "ctrl+w":
		if !v.DeleteQueryWordBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.WordBackspace(v.Query)
		m.jumpToBestMatch()
		return true
	case "ctrl+a":
		if !v.MoveQueryCursorStart() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Cursor(v.QueryCursor)
		return true
	case "ctrl+e":
		if !v.MoveQueryCursorEnd() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Cursor(v.QueryCursor)
		return true
	case "alt+b":
		if !v.MoveQueryCursorWordBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.CursorWord(v.QueryCursor)
		return true
	case "alt+f":
		if !v.MoveQueryCursorWordForward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.CursorWord(v.QueryCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !v.DeleteQueryRuneBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Backspace(v.Query)
		m.jumpToBestMatch()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		if !v.MoveQueryCursorRuneBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Cursor(v.QueryCursor)
		return true
	case tea.KeyRight:
		if !v.MoveQueryCursorRuneForward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Cursor(v.QueryCursor)
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	before := m.view.QueryCursorPos()
	if !m.view.InsertQueryText(text) {
		return false
	}
	m.noteSearchCursorChange(before)
	events.Search.Append(m.view.Query)
	m.jumpToBestMatch()
	return true
}

// visibleLabels lists the label of every visible line. Search never hides
// lines, so positions in the result are visible line indices.
func (m *Model) visibleLabels() []string {
	labels := make([]string, 0, m.visible)
	lines := tree.NewLines(m.root, m.collapsed)
	for {
		line, ok := lines.Next()
		if !ok {
			return labels
		}
		labels = append(labels, line.Label)
	}
}

func (m *Model) jumpToBestMatch() {
	if m.view.Query == "" {
		return
	}
	idx := uistate.BestMatchIndex(m.visibleLabels(), m.view.Query)
	events.Search.Match(m.view.Query, idx)
	if idx < 0 {
		return
	}
	m.moveCursor(func() bool { return m.view.SetCursor(idx) })
}

// nextMatch moves to the next line after the cursor matching the last query.
func (m *Model) nextMatch() {
	if m.view.Query == "" {
		m.setInfo("No search query; press / to search")
		return
	}
	idx := uistate.NextMatchIndex(m.visibleLabels(), m.view.Query, m.view.Cursor)
	events.Search.Match(m.view.Query, idx)
	if idx < 0 {
		m.setInfo("No matches for " + m.view.Query)
		return
	}
	m.moveCursor(func() bool { return m.view.SetCursor(idx) })
}

func (m *Model) searchPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.searchCursor.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		m.searchCursor.TextStyle = styles.Search.Copy()
	} else {
		m.searchCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "/ "
	if styles.SearchPrompt != nil {
		prompt = styles.SearchPrompt.Render(prompt)
	}
	runes := []rune(m.view.Query)
	if len(runes) == 0 {
		placeholder := []rune(searchPlaceholder)
		if styles.SearchPlaceholder != nil {
			m.searchCursor.TextStyle = styles.SearchPlaceholder.Copy()
		}
		caret := m.renderSearchCursor(string(placeholder[0]))
		return prompt + caret + render(styles.SearchPlaceholder, string(placeholder[1:]))
	}
	pos := m.view.QueryCursorPos()
	before := render(styles.Search, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Search, string(runes[pos+1:]))
	}
	return prompt + before + m.renderSearchCursor(caretRune) + after
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy().Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
