package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchJumpsToBestMatch(t *testing.T) {
	m := newSampleModel(t)
	m.handleKeyMsg(runes("/"))
	if !m.searching {
		t.Fatalf("expected search mode")
	}
	m.handleKeyMsg(runes("read"))
	if m.view.Query != "read" {
		t.Fatalf("expected query 'read', got %q", m.view.Query)
	}
	if m.view.Cursor != 6 {
		t.Fatalf("expected cursor on README.md, got %d", m.view.Cursor)
	}
	if m.visible != 8 {
		t.Fatalf("expected search to keep every line visible, got %d", m.visible)
	}
}

func TestSearchEscapeRestoresCursor(t *testing.T) {
	m := newSampleModel(t)
	m.view.SetCursor(1)
	m.handleKeyMsg(runes("/"))
	m.handleKeyMsg(runes("LICENSE"))
	if m.view.Cursor != 7 {
		t.Fatalf("expected cursor on LICENSE, got %d", m.view.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("expected search closed")
	}
	if m.view.Cursor != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", m.view.Cursor)
	}
}

func TestSearchSubmitKeepsMatchAndNextCycles(t *testing.T) {
	m := newSampleModel(t)
	m.handleKeyMsg(runes("/"))
	m.handleKeyMsg(runes(".go"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatalf("expected search closed")
	}
	if m.view.Cursor != 1 {
		t.Fatalf("expected cursor on main.go, got %d", m.view.Cursor)
	}
	m.handleKeyMsg(runes("n"))
	if m.view.Cursor != 3 {
		t.Fatalf("expected next match node.go, got %d", m.view.Cursor)
	}
	m.handleKeyMsg(runes("n"))
	m.handleKeyMsg(runes("n"))
	if m.view.Cursor != 1 {
		t.Fatalf("expected wrap back to main.go, got %d", m.view.Cursor)
	}
}

func TestSearchKeysDoNotMutateTree(t *testing.T) {
	m := newSampleModel(t)
	m.handleKeyMsg(runes("/"))
	m.handleKeyMsg(runes("h"))
	m.handleKeyMsg(runes("C"))
	if m.collapsed.Len() != 0 {
		t.Fatalf("expected typed keys to edit the query only")
	}
	if m.view.Query != "hC" {
		t.Fatalf("expected query 'hC', got %q", m.view.Query)
	}
}

func TestSearchTextEditing(t *testing.T) {
	m := newSampleModel(t)
	m.handleKeyMsg(runes("/"))
	m.handleKeyMsg(runes("abc"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyLeft})
	if pos := m.view.QueryCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.view.Query != "ac" {
		t.Fatalf("expected 'ac' after backspace, got %q", m.view.Query)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.view.Query != "" {
		t.Fatalf("expected query cleared, got %q", m.view.Query)
	}
}

func TestNextWithoutQuerySetsInfo(t *testing.T) {
	m := newSampleModel(t)
	m.handleKeyMsg(runes("n"))
	if !strings.Contains(m.currentInfo(), "press /") {
		t.Fatalf("expected hint info, got %q", m.currentInfo())
	}
}

func TestSearchPromptPlaceholder(t *testing.T) {
	m := newSampleModel(t)
	m.openSearch()
	prompt := m.searchPrompt()
	if !strings.Contains(prompt, "ype to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}
