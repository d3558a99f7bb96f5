package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text and re-filters the screen's items.
//
// Starting a filter remembers the cursor; clearing it puts the cursor back
// there. While a filter is active the cursor follows the best match.
func (l *Level) SetFilter(query string, cursor int) {
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""

	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))

	switch {
	case now && !was:
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case now:
		l.Cursor = 0
	}
	l.applyFilter()

	switch {
	case now:
		if idx := BestMatchIndex(l.Items, query); idx >= 0 {
			l.Cursor = idx
		}
	case was:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// editFilter rewrites the filter text around the cursor. fn reports false
// when there is nothing to change.
func (l *Level) editFilter(fn func(text []rune, pos int) ([]rune, int, bool)) bool {
	text, pos, ok := fn([]rune(l.Filter), l.FilterCursorPos())
	if !ok {
		return false
	}
	l.SetFilter(string(text), pos)
	return true
}

// moveFilterCursor repositions the cursor without touching the text.
func (l *Level) moveFilterCursor(fn func(text []rune, pos int) int) bool {
	pos := l.FilterCursorPos()
	next := clamp(fn([]rune(l.Filter), pos), 0, len([]rune(l.Filter)))
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// InsertFilterText inserts text at the cursor.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		if len(insert) == 0 {
			return nil, 0, false
		}
		out := make([]rune, 0, len(cur)+len(insert))
		out = append(out, cur[:pos]...)
		out = append(out, insert...)
		out = append(out, cur[pos:]...)
		return out, pos + len(insert), true
	})
}

// DeleteFilterRuneBackward deletes the rune before the cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		return append(cur[:pos-1:pos-1], cur[pos:]...), pos - 1, true
	})
}

// DeleteFilterWordBackward deletes the word before the cursor, along with
// any spaces between it and the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(cur []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		start := wordStart(cur, pos)
		return append(cur[:start:start], cur[pos:]...), start, true
	})
}

func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(func([]rune, int) int { return 0 })
}

func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(func(text []rune, _ int) int { return len(text) })
}

func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart)
}

func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd)
}

func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(func(_ []rune, pos int) int { return pos - 1 })
}

func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(func(_ []rune, pos int) int { return pos + 1 })
}

// wordStart skips spaces then a word backwards from pos.
func wordStart(text []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(text[i-1]) {
		i--
	}
	return i
}

// wordEnd skips a word then spaces forwards from pos.
func wordEnd(text []rune, pos int) int {
	i := pos
	for i < len(text) && !unicode.IsSpace(text[i]) {
		i++
	}
	for i < len(text) && unicode.IsSpace(text[i]) {
		i++
	}
	return i
}

// FilterItems returns the items whose label fuzzy-matches query, in their
// original order. When nothing fuzzy-matches, a plain substring match is
// tried. Item ids are not searched: rows carry generated ids.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	matched := make(map[int]bool, len(items))
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels(items)) {
		matched[rank.OriginalIndex] = true
	}
	if len(matched) == 0 {
		lower := strings.ToLower(trimmed)
		for i, item := range items {
			if strings.Contains(strings.ToLower(item.Label), lower) {
				matched[i] = true
			}
		}
	}
	filtered := make([]Item, 0, len(matched))
	for i, item := range items {
		if matched[i] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query: an
// exact label, then a label prefix, then a substring, then the closest fuzzy
// match. It returns 0 when nothing matches and -1 for no items.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tests := []func(label string) bool{
		func(label string) bool { return label == lower },
		func(label string) bool { return strings.HasPrefix(label, lower) },
		func(label string) bool { return strings.Contains(label, lower) },
	}
	for _, test := range tests {
		for i, item := range items {
			if test(strings.ToLower(item.Label)) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		if ranks[a].Distance != ranks[b].Distance {
			return ranks[a].Distance < ranks[b].Distance
		}
		return ranks[a].OriginalIndex < ranks[b].OriginalIndex
	})
	return ranks[0].OriginalIndex
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
