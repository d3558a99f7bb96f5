package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/time-travel/internal/format/table"
	"github.com/atomicstack/time-travel/internal/panel"
	"github.com/atomicstack/time-travel/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)


// footerText lists the keys that do something on the current entry. Going
// back from the first screen leaves the program.
func (m *Model) footerText() string {
	hints := []string{"↑/↓ move", "enter select", "esc quit"}
	if m.session.Index() > 1 {
		hints[2] = "esc back"
	}
	if m.session.CanForward() {
		hints = append(hints, "alt+→ forward")
	}
	return strings.Join(append(hints, "ctrl+c quit"), "  ")
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// screenLine is a rendered line of the active screen. item is the index of
// the selectable element it shows, or -1 for static content.
type screenLine struct {
	styledLine
	item int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModePrompt && m.form != nil {
		return m.viewForm()
	}
	lines := make([]styledLine, 0, 16)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	cur := m.nav.Current()
	current := m.currentLevel()
	if cur == nil || current == nil {
		lines = append(lines, styledLine{text: "(nothing to show)", style: styles.Info})
	} else {
		lines = append(lines, m.windowLines(m.screenLines(cur, current), current)...)
		if current.Filter != "" && len(current.Items) == 0 {
			lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", current.Filter), style: styles.Info})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + filter prompt.
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText, _ := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	out := renderLines(lines) + "\n" + renderLines(bottomLines)
	if m.width > 0 {
		rows := strings.Split(out, "\n")
		for i, row := range rows {
			if lipgloss.Width(row) > m.width {
				rows[i] = truncate.StringWithTail(row, uint(m.width-1), "…")
			}
		}
		out = strings.Join(rows, "\n")
	}
	return out
}

func (m *Model) header() string {
	cur := m.nav.Current()
	if cur == nil {
		return ""
	}
	return strings.TrimSpace(screenTitle(cur))
}

// screenLines renders the container of s in document order. Selectable
// elements filtered out of l are skipped.
func (m *Model) screenLines(s *screen.Screen, l *level) []screenLine {
	index := make(map[*panel.Element]int, len(l.Items))
	for i, item := range l.Items {
		index[item.Element] = i
	}
	var out []screenLine
	var walk func(el *panel.Element)
	walk = func(el *panel.Element) {
		for _, child := range el.Children {
			if child.Hidden {
				continue
			}
			switch {
			case child.Tag == "h1":
				// rendered as the header
			case child.Tag == "ul":
				out = append(out, m.listLines(child, index, l)...)
			case child.Selectable():
				if idx, ok := index[child]; ok {
					out = append(out, screenLine{m.buildItemLine(buttonLabel(child), idx, l, m.width), idx})
				}
			case len(child.Children) > 0:
				walk(child)
			case child.Text != "":
				style := styles.Text
				if child.HasClass("clock") {
					style = styles.Clock
				}
				out = append(out, screenLine{styledLine{text: child.Text, style: style}, -1})
			}
		}
	}
	walk(s.Container())
	return out
}

// listLines aligns the cells of each row into columns.
func (m *Model) listLines(list *panel.Element, index map[*panel.Element]int, l *level) []screenLine {
	rows := make([]*panel.Element, 0, len(list.Children))
	cells := make([][]string, 0, len(list.Children))
	for _, row := range list.Children {
		if row.Hidden {
			continue
		}
		rows = append(rows, row)
		cells = append(cells, rowCells(row))
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight})
	out := make([]screenLine, 0, len(rows))
	for i, row := range rows {
		if !row.Selectable() {
			out = append(out, screenLine{styledLine{text: "  " + formatted[i], style: styles.Row}, -1})
			continue
		}
		if idx, ok := index[row]; ok {
			out = append(out, screenLine{m.buildItemLine(formatted[i], idx, l, m.width), idx})
		}
	}
	return out
}

func rowCells(row *panel.Element) []string {
	if len(row.Children) == 0 {
		return []string{row.Label()}
	}
	cells := make([]string, 0, len(row.Children))
	for _, cell := range row.Children {
		if !cell.Hidden {
			cells = append(cells, cell.Label())
		}
	}
	return cells
}

func buttonLabel(el *panel.Element) string {
	label := el.Label()
	if key, ok := el.Attr(panel.KeyAttr); ok && key != "" {
		return fmt.Sprintf("%s  [%s]", label, key)
	}
	return label
}

// windowLines drops item lines outside the viewport when the screen has more
// items than fit. Static lines are always kept.
func (m *Model) windowLines(lines []screenLine, l *level) []styledLine {
	maxItems := m.maxVisibleItems()
	out := make([]styledLine, 0, len(lines))
	if maxItems <= 0 || len(l.Items) <= maxItems {
		for _, line := range lines {
			out = append(out, line.styledLine)
		}
		return out
	}
	l.EnsureCursorVisible(maxItems)
	start := l.ViewportOffset
	end := start + maxItems
	for _, line := range lines {
		if line.item >= 0 && (line.item < start || line.item >= end) {
			continue
		}
		out = append(out, line.styledLine)
	}
	return out
}

// buildItemLine constructs a single styledLine for a selectable element.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full container.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

// maxVisibleItems is the number of selectable rows that fit once the header,
// static screen lines and bottom bar are placed.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.header(); header != "" {
		used++
	}
	if cur := m.nav.Current(); cur != nil {
		if l, ok := m.levels[cur.ID()]; ok {
			for _, line := range m.screenLines(cur, l) {
				if line.item < 0 {
					used++
				}
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
