package state

import "testing"

func TestInsertAndDeleteQueryText(t *testing.T) {
	v := NewViewport()

	if !v.InsertQueryText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if v.Query != "ab" || v.QueryCursor != 2 {
		t.Fatalf("unexpected query state %q/%d", v.Query, v.QueryCursor)
	}

	v.QueryCursor = 1
	if !v.InsertQueryText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if v.Query != "azb" || v.QueryCursor != 2 {
		t.Fatalf("expected insert into middle, got %q/%d", v.Query, v.QueryCursor)
	}

	if !v.DeleteQueryRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if v.Query != "ab" || v.QueryCursor != 1 {
		t.Fatalf("unexpected query state after delete %q/%d", v.Query, v.QueryCursor)
	}

	v.SetQuery("abc def", len("abc def"))
	if !v.DeleteQueryWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if v.Query != "abc " {
		t.Fatalf("expected trailing word removed, got %q", v.Query)
	}

	v.SetQuery("abc", 0)
	if v.DeleteQueryRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if v.InsertQueryText("") {
		t.Fatal("expected empty insert to be ignored")
	}
}

func TestQueryCursorNavigation(t *testing.T) {
	v := NewViewport()
	v.SetQuery("one two", 7)

	if !v.MoveQueryCursorWordBackward() || v.QueryCursor != 4 {
		t.Fatalf("expected cursor at word start 4, got %d", v.QueryCursor)
	}
	if !v.MoveQueryCursorStart() || v.QueryCursor != 0 {
		t.Fatalf("expected cursor at start, got %d", v.QueryCursor)
	}
	if v.MoveQueryCursorRuneBackward() {
		t.Fatal("expected no movement before start")
	}
	if !v.MoveQueryCursorWordForward() || v.QueryCursor != 4 {
		t.Fatalf("expected cursor after first word, got %d", v.QueryCursor)
	}
	if !v.MoveQueryCursorRuneForward() || v.QueryCursor != 5 {
		t.Fatalf("expected cursor at 5, got %d", v.QueryCursor)
	}
	if !v.MoveQueryCursorEnd() || v.QueryCursor != 7 {
		t.Fatalf("expected cursor at end, got %d", v.QueryCursor)
	}
	if v.MoveQueryCursorRuneForward() {
		t.Fatal("expected no movement past end")
	}
}

func TestSetQueryClampsCursor(t *testing.T) {
	v := NewViewport()
	v.SetQuery("héllo", 99)
	if v.QueryCursor != 5 {
		t.Fatalf("expected cursor clamped to rune length, got %d", v.QueryCursor)
	}
	v.SetQuery("x", -4)
	if v.QueryCursorPos() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", v.QueryCursorPos())
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	labels := []string{"src", "main.go", "mainline", "main", "README.md"}
	if got := BestMatchIndex(labels, "main"); got != 3 {
		t.Fatalf("expected exact match 3, got %d", got)
	}
	if got := BestMatchIndex(labels, "MAI"); got != 1 {
		t.Fatalf("expected first prefix match 1, got %d", got)
	}
	if got := BestMatchIndex(labels, "adme"); got != 4 {
		t.Fatalf("expected substring match 4, got %d", got)
	}
	if got := BestMatchIndex(labels, "rdm"); got != 4 {
		t.Fatalf("expected fuzzy match 4, got %d", got)
	}
	if got := BestMatchIndex(labels, "zzz"); got != -1 {
		t.Fatalf("expected no match, got %d", got)
	}
	if got := BestMatchIndex(labels, "  "); got != -1 {
		t.Fatalf("expected blank query to match nothing, got %d", got)
	}
}

func TestNextMatchIndexWraps(t *testing.T) {
	labels := []string{"alpha", "beta", "alphabet", "gamma"}
	if got := NextMatchIndex(labels, "alp", 0); got != 2 {
		t.Fatalf("expected next match 2, got %d", got)
	}
	if got := NextMatchIndex(labels, "alp", 2); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := NextMatchIndex(labels, "gm", -1); got != 3 {
		t.Fatalf("expected fuzzy match 3, got %d", got)
	}
	if got := NextMatchIndex(labels, "delta", 1); got != -1 {
		t.Fatalf("expected no match, got %d", got)
	}
}
