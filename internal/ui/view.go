package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/pathtree/internal/format/table"
	"github.com/atomicstack/pathtree/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultSourceName = "pathtree"
	rowIndicator      = "▌ "
	footerHint        = "↑/↓ move  ←/→ fold  enter toggle  / search  y copy  ? help  q quit"
	infoTTL           = 5 * time.Second
)

var helpRows = [][]string{
	{"↑/k ↓/j", "move cursor"},
	{"pgup pgdown", "move by page"},
	{"home/g end/G", "first / last line"},
	{"←/h", "collapse, or jump to parent"},
	{"→/l", "expand, or step into children"},
	{"enter space", "toggle collapse"},
	{"click", "toggle collapse"},
	{"E", "expand everything"},
	{"C", "collapse everything"},
	{"/", "search visible lines"},
	{"n", "next match"},
	{"y", "copy path to clipboard"},
	{"?", "toggle this help"},
	{"q ctrl+c", "quit"},
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	if m.showHelp {
		lines = append(lines, m.helpLines()...)
	} else {
		lines = append(lines, m.treeLines()...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + search prompt.
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine}, m.width)
	out := renderLines(append(lines, bottom...))
	prompt := ""
	if m.searching {
		prompt = m.searchPrompt()
		if m.width > 0 && lipgloss.Width(prompt) > m.width {
			prompt = truncate.StringWithTail(prompt, uint(m.width), "…")
		}
	}
	return out + "\n" + prompt
}

func (m *Model) header() string {
	name := m.sourceName
	if name == "" {
		name = defaultSourceName
	}
	text := fmt.Sprintf("%s — %d/%d nodes", name, m.visible, m.total)
	if m.loading {
		text += " (loading…)"
	}
	return text
}

func (m *Model) treeLines() []styledLine {
	m.syncViewport()
	if m.visible == 0 {
		msg := "(no paths)"
		style := styles.Info
		if m.loading {
			msg = "Loading…"
			style = styles.Loading
		}
		return []styledLine{{text: msg, style: style}}
	}
	window := tree.Window(m.root, m.collapsed, m.view.Offset, m.maxVisibleItems())
	out := make([]styledLine, 0, len(window))
	for i, line := range window {
		out = append(out, m.buildTreeLine(line, m.view.Offset+i == m.view.Cursor))
	}
	return out
}

// buildTreeLine styles the indicator and branch glyphs separately from the
// label so the tree structure stays visually quiet.
func (m *Model) buildTreeLine(line tree.Line, selected bool) styledLine {
	lineStyle := styles.Item
	if line.Collapsed {
		lineStyle = styles.CollapsedItem
	}
	branchStyle := styles.Branch
	if selected {
		lineStyle = styles.SelectedItem
		branchStyle = styles.SelectedBranch
	}
	head := rowIndicator + line.Prefix + line.Connector
	text := head + line.Label
	if selected && m.width > 0 {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   branchStyle,
		highlightFrom: len([]rune(head)),
	}
}

func (m *Model) helpLines() []styledLine {
	formatted := table.Format(helpRows, nil)
	out := make([]styledLine, 0, len(formatted)+1)
	keyWidth := 0
	for _, row := range helpRows {
		if w := lipgloss.Width(row[0]); w > keyWidth {
			keyWidth = w
		}
	}
	for _, text := range formatted {
		out = append(out, styledLine{
			text:          text,
			style:         styles.HelpText,
			prefixStyle:   styles.HelpKey,
			highlightFrom: keyWidth,
		})
	}
	return out
}

func (m *Model) headerRows() int {
	return 1
}

// maxVisibleItems is the number of tree rows that fit, or -1 when the height
// is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 + m.headerRows() // bottom bar: status + prompt
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
	m.infoExpire = time.Now().Add(infoTTL)
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
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width terminal cells, marking the cut with "…".
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
