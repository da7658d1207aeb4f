package ui

import (
	"strings"

	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/atomicstack/tokencalc/internal/format/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator = "▌ "
	resultLabel   = "Total Value: "
	footerText    = "↑/↓ move  enter select  ⌫/del remove token  esc close  ctrl+c quit"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	tailStyle     *lipgloss.Style
	tailFrom      int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	lines = append(lines, styledLine{text: m.promptView(), raw: true})
	lines = append(lines, m.suggestionLines()...)
	lines = append(lines, styledLine{text: resultLabel + m.resultText(), style: styles.Result})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	if m.adapter != nil && m.adapter.Loading() {
		return styledLine{text: appTitle + "  " + m.spinner.View() + " loading suggestions…", style: styles.Loading}
	}
	return styledLine{text: appTitle, style: styles.Header}
}

// resultText renders the cached result; an unset result shows as 0.
func (m *Model) resultText() string {
	res := m.input.Result()
	if res.Kind == expression.ResultUnset {
		return "0"
	}
	return res.String()
}

func (m *Model) suggestionLines() []styledLine {
	list := m.input.Suggestions()
	if len(list) == 0 {
		return nil
	}
	m.syncViewport()
	start, end := m.visibleRange(len(list))
	visible := list[start:end]

	rows := make([][]string, len(visible))
	labelWidth := 0
	for i, record := range visible {
		rows[i] = []string{record.Label(), record.Category}
		if w := lipgloss.Width(record.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	lines := make([]styledLine, 0, len(formatted))
	for i, text := range formatted {
		label := visible[i].Label()
		// The category column starts after the padded label and the column gap.
		tailFrom := len([]rune(itemIndicator)) + len([]rune(label)) + labelWidth - lipgloss.Width(label) + 2
		lines = append(lines, m.buildItemLine(text, tailFrom, start+i))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a suggestion row. The row
// is padded to the model width so the highlight background spans it.
func (m *Model) buildItemLine(text string, tailFrom, idx int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	tailStyle := styles.Category
	if idx == m.highlight.Index {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		tailStyle = styles.SelectedCategory
	}
	fullText := itemIndicator + text
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
		tailStyle:     tailStyle,
		tailFrom:      tailFrom,
	}
}

// visibleRange returns the slice of the n suggestions that fits on screen.
func (m *Model) visibleRange(n int) (int, int) {
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || n <= maxItems {
		return 0, n
	}
	start := m.highlight.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxItems > n {
		start = n - maxItems
	}
	return start, start + maxItems
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, prompt and result line
	if m.errMsg != "" {
		used++
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
	m.syncViewport()
	return nil
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
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		runes := []rune(line.text)
		if line.highlightFrom <= 0 && line.tailFrom <= 0 {
			out[i] = renderStyled(line.style, line.text)
			continue
		}
		end := len(runes)
		if line.tailFrom > 0 && line.tailFrom < end {
			end = line.tailFrom
		}
		from := line.highlightFrom
		if from > end {
			from = end
		}
		tailStyle := line.tailStyle
		if tailStyle == nil {
			tailStyle = line.style
		}
		prefixStyle := line.prefixStyle
		if prefixStyle == nil {
			prefixStyle = line.style
		}
		out[i] = renderStyled(prefixStyle, string(runes[:from])) +
			renderStyled(line.style, string(runes[from:end])) +
			renderStyled(tailStyle, string(runes[end:]))
	}
	return strings.Join(out, "\n")
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
