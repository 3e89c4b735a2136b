// Package state holds the cursor, scroll and search state for the tree view.
package state

// Viewport tracks the cursor over a list of Total visible lines together with
// the scroll offset and the search query being edited.
type Viewport struct {
	Total       int
	Cursor      int
	Offset      int
	Query       string
	QueryCursor int
	// LastCursor remembers the cursor when a search starts so it can be
	// restored when the search is abandoned. -1 when unset.
	LastCursor int
}

func NewViewport() *Viewport {
	return &Viewport{LastCursor: -1}
}

// SetTotal updates the number of visible lines and clamps the cursor.
func (v *Viewport) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	v.Total = total
	v.clampCursor()
}

// SetCursor moves the cursor to idx, clamped to the visible range.
func (v *Viewport) SetCursor(idx int) bool {
	old := v.Cursor
	v.Cursor = idx
	v.clampCursor()
	return old != v.Cursor
}

func (v *Viewport) clampCursor() {
	if v.Total == 0 {
		v.Cursor = 0
		return
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= v.Total {
		v.Cursor = v.Total - 1
	}
}
