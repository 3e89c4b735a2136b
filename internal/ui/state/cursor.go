package state

// MoveCursorUp moves the cursor one line up, wrapping to the last line.
func (v *Viewport) MoveCursorUp() bool {
	if v.Total == 0 {
		return false
	}
	if v.Cursor > 0 {
		v.Cursor--
	} else {
		v.Cursor = v.Total - 1
	}
	return v.Total > 1
}

// MoveCursorDown moves the cursor one line down, wrapping to the first line.
func (v *Viewport) MoveCursorDown() bool {
	if v.Total == 0 {
		return false
	}
	if v.Cursor < v.Total-1 {
		v.Cursor++
	} else {
		v.Cursor = 0
	}
	return v.Total > 1
}

// MoveCursorHome moves the cursor to the first line.
func (v *Viewport) MoveCursorHome() bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = 0
	return old != v.Cursor
}

// MoveCursorEnd moves the cursor to the last line.
func (v *Viewport) MoveCursorEnd() bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = v.Total - 1
	return old != v.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (v *Viewport) MoveCursorPageUp(maxVisible int) bool {
	return v.MoveCursorBy(-v.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (v *Viewport) MoveCursorPageDown(maxVisible int) bool {
	return v.MoveCursorBy(v.pageSize(maxVisible))
}

// MoveCursorBy moves the cursor delta lines without wrapping.
func (v *Viewport) MoveCursorBy(delta int) bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	v.Cursor += delta
	v.clampCursor()
	return v.Cursor != old
}

func (v *Viewport) pageSize(maxVisible int) int {
	if v.Total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > v.Total {
		size = v.Total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the offset so the cursor stays on screen.
func (v *Viewport) EnsureCursorVisible(maxVisible int) {
	if v.Total == 0 {
		v.Cursor = 0
		v.Offset = 0
		return
	}
	v.clampCursor()
	if maxVisible <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := v.Total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if v.Cursor < v.Offset {
		v.Offset = v.Cursor
	}
	upper := v.Offset + maxVisible - 1
	if v.Cursor > upper {
		v.Offset = v.Cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}
