package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery replaces the search query and places the query cursor.
func (v *Viewport) SetQuery(query string, cursor int) {
	v.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	v.QueryCursor = cursor
}

// QueryCursorPos returns the rune offset of the query cursor.
func (v *Viewport) QueryCursorPos() int {
	runes := []rune(v.Query)
	if v.QueryCursor < 0 {
		return 0
	}
	if v.QueryCursor > len(runes) {
		return len(runes)
	}
	return v.QueryCursor
}

// InsertQueryText inserts text into the query at the cursor position.
func (v *Viewport) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	v.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the query cursor.
func (v *Viewport) DeleteQueryRuneBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	v.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (v *Viewport) DeleteQueryWordBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	v.SetQuery(string(updated), i)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (v *Viewport) MoveQueryCursorStart() bool {
	if v.QueryCursorPos() == 0 {
		return false
	}
	v.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (v *Viewport) MoveQueryCursorEnd() bool {
	end := len([]rune(v.Query))
	if v.QueryCursorPos() == end {
		return false
	}
	v.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (v *Viewport) MoveQueryCursorWordBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	v.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (v *Viewport) MoveQueryCursorWordForward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	v.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (v *Viewport) MoveQueryCursorRuneBackward() bool {
	if v.QueryCursorPos() == 0 {
		return false
	}
	v.QueryCursor = v.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (v *Viewport) MoveQueryCursorRuneForward() bool {
	pos := v.QueryCursorPos()
	if pos >= len([]rune(v.Query)) {
		return false
	}
	v.QueryCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// BestMatchIndex returns the index of the label that best matches query, or
// -1 when nothing matches. Exact matches win over prefix matches, which win
// over substring matches; fuzzy ranking breaks the remaining cases.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}

// NextMatchIndex returns the first label after from (wrapping around) that
// matches query, or -1 when no label does.
func NextMatchIndex(labels []string, query string, from int) int {
	trimmed := strings.TrimSpace(query)
	n := len(labels)
	if trimmed == "" || n == 0 {
		return -1
	}
	if from < -1 || from >= n {
		from = -1
	}
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if fuzzy.MatchNormalizedFold(trimmed, labels[i]) {
			return i
		}
	}
	return -1
}
