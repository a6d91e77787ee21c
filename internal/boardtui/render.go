package boardtui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/kaban/dragdrop"
	internalstrings "github.com/amonks/kaban/internal/strings"
	"github.com/amonks/kaban/internal/ui"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/view"
)

const descriptionPreviewLines = 2

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading board..."
	}
	switch m.mode {
	case modeForm:
		return m.renderOverlay(m.renderForm())
	case modeDetail:
		return m.renderOverlay(m.renderDetail())
	case modeHelp:
		return m.renderOverlay(m.helpContent())
	}

	header := m.renderHeader()
	help := m.renderHelpLine()
	status := m.renderStatusLine()
	contentHeight := m.height - 3
	if contentHeight < 3 {
		contentHeight = 3
	}
	return strings.Join([]string{header, help, m.renderColumns(contentHeight), status}, "\n")
}

func (m model) renderHeader() string {
	parts := []string{m.styles.brand.Render("Kaban")}
	hidden := m.view.Hidden
	for i, status := range task.Statuses() {
		label := fmt.Sprintf("%d %s", i+1, status)
		if hidden[status] {
			parts = append(parts, m.styles.toggleOff.Render("["+label+"]"))
			continue
		}
		parts = append(parts, m.styles.toggleOn.Render("["+label+"]"))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	hint := m.styles.toggleOff.Render(fmt.Sprintf("t: %s theme", m.theme))
	spacerWidth := m.width - lipgloss.Width(content) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return m.styles.headerBar.Width(m.width).Render(content + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderHelpLine() string {
	return m.styles.helpBar.Render(truncateText(m.helpSummary(), m.width))
}

func (m model) helpSummary() string {
	if m.drag.State() == dragdrop.Dragging {
		return "Keys: h/l choose column | space/enter drop | esc cancel"
	}
	if item, ok := m.selectedTask(); ok && m.drag.PendingDelete(item.ID) {
		return "Keys: y delete | n/esc keep"
	}
	return "Keys: h/l column | j/k card | space move | enter open | n new | e edit | x delete | s sort | 1-3 columns | ? help | q quit"
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := m.styles.muted
	switch m.statusLevel {
	case statusError:
		style = m.styles.statusError
	case statusInfo:
		style = m.styles.statusInfo
	}
	return style.Render(truncateText(m.status, m.width))
}

func (m model) renderColumns(height int) string {
	if len(m.columns) == 0 {
		return ""
	}
	widths := splitWidths(m.width, len(m.columns))
	dragging := m.drag.State() == dragdrop.Dragging
	panes := make([]string, 0, len(m.columns))
	for i, column := range m.columns {
		style := m.styles.pane
		switch {
		case dragging && i == m.hover:
			style = m.styles.paneDrop
		case !dragging && i == m.focus:
			style = m.styles.paneFocused
		}
		// Width and Height include padding but not the border.
		outerWidth := widths[i]
		innerWidth := outerWidth - 4
		if innerWidth < 1 {
			innerWidth = 1
		}
		innerHeight := height - 2
		if innerHeight < 1 {
			innerHeight = 1
		}
		content := m.renderColumn(column, i, innerWidth, innerHeight)
		panes = append(panes, style.Width(outerWidth-2).Height(innerHeight).MaxHeight(height).Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func splitWidths(total, count int) []int {
	widths := make([]int, count)
	if count == 0 {
		return widths
	}
	base := total / count
	extra := total % count
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

func (m model) renderColumn(column view.Column, index, width, height int) string {
	title := m.styles.titleFor(column.Status).Render(fmt.Sprintf("%s (%d)", column.Status, len(column.Tasks)))
	header := title + m.styles.muted.Render(" "+column.Sort.Label())
	if m.drag.State() == dragdrop.Dragging && index == m.hover {
		header += m.styles.statusInfo.Render(" <- drop")
	}
	lines := []string{lipgloss.NewStyle().MaxWidth(width).Render(header), ""}

	if len(column.Tasks) == 0 {
		lines = append(lines, m.styles.muted.Render("No tasks"))
		return strings.Join(lines, "\n")
	}

	cards := make([]string, len(column.Tasks))
	for i, item := range column.Tasks {
		selected := index == m.focus && i == m.cursor[column.Status]
		cards[i] = m.renderCard(item, width, selected)
	}

	available := height - len(lines)
	start, end := visibleCards(cards, m.cursor[column.Status], available)
	if start > 0 {
		lines = append(lines, m.styles.muted.Render(fmt.Sprintf("^ %d more", start)))
	}
	lines = append(lines, cards[start:end]...)
	if end < len(cards) {
		lines = append(lines, m.styles.muted.Render(fmt.Sprintf("v %d more", len(cards)-end)))
	}
	return strings.Join(lines, "\n")
}

// visibleCards picks a window of cards that keeps selected on screen.
func visibleCards(cards []string, selected, available int) (int, int) {
	if selected < 0 || selected >= len(cards) {
		selected = 0
	}
	heightOf := func(i int) int { return lipgloss.Height(cards[i]) }

	start := selected
	used := heightOf(selected)
	for start > 0 && used+heightOf(start-1) <= available {
		start--
		used += heightOf(start)
	}
	end := selected + 1
	for end < len(cards) && used+heightOf(end) <= available {
		used += heightOf(end)
		end++
	}
	return start, end
}

func (m model) renderCard(item task.Task, width int, selected bool) string {
	textWidth := width - 2
	if textWidth < 1 {
		textWidth = 1
	}

	if m.drag.PendingDelete(item.ID) {
		body := []string{
			truncateText("Delete "+quoteTitle(item.Title)+"?", textWidth),
			"y delete | n keep",
		}
		return m.styles.cardConfirm.Render(strings.Join(body, "\n")) + "\n"
	}

	title := item.Title
	if dragged, ok := m.drag.Dragged(); ok && dragged == item.ID {
		title = "[moving] " + title
	}
	lines := []string{m.styles.cardTitle.Render(truncateText(title, textWidth))}
	lines = append(lines, descriptionPreview(item.Description, textWidth)...)
	meta := "added " + ui.FormatTimeAgo(item.CreationDate, time.Now())
	lines = append(lines, m.styles.muted.Render(truncateText(meta, textWidth)))

	style := m.styles.card
	if selected {
		style = m.styles.cardSelected
	}
	return style.Render(strings.Join(lines, "\n")) + "\n"
}

func descriptionPreview(description string, width int) []string {
	text := internalstrings.NormalizeWhitespace(description)
	if text == "" {
		return nil
	}
	wrapped := strings.Split(wordwrap.String(text, width), "\n")
	if len(wrapped) > descriptionPreviewLines {
		wrapped = wrapped[:descriptionPreviewLines]
		wrapped[len(wrapped)-1] = runewidth.Truncate(wrapped[len(wrapped)-1]+" ...", width, "...")
	}
	for i, line := range wrapped {
		wrapped[i] = truncateText(line, width)
	}
	return wrapped
}

func quoteTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "this task"
	}
	return fmt.Sprintf("%q", title)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

func (m model) renderOverlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.modal.Render(content))
}

func (m model) renderForm() string {
	lines := []string{
		m.styles.label.Render(m.form.heading()),
		"",
		m.styles.label.Render("Title"),
		m.form.title.View(),
		"",
		m.styles.label.Render("Description (optional)"),
		m.form.description.View(),
		"",
	}
	if m.form.err != "" {
		lines = append(lines, m.styles.statusError.Render(m.form.err), "")
	}
	lines = append(lines, m.styles.muted.Render("tab switch field | enter/ctrl+s save | esc cancel"))
	return strings.Join(lines, "\n")
}

func (m model) renderDetail() string {
	return strings.Join([]string{
		m.detail.viewport.View(),
		"",
		m.styles.muted.Render("e edit | esc close"),
	}, "\n")
}

func (m model) helpContent() string {
	sections := []string{
		m.styles.label.Render("Board"),
		"h/l or left/right: move between columns",
		"j/k or up/down: move between cards",
		"enter: open task",
		"n: new task",
		"e: edit task",
		"x: delete task (y confirms, n cancels)",
		"s: cycle column sort",
		"1/2/3: show or hide a column",
		"t: toggle light/dark theme",
		"",
		m.styles.label.Render("Moving"),
		"space: pick up task",
		"h/l: choose column",
		"space or enter: drop",
		"esc: cancel",
		"",
		"q or ctrl+c: quit",
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}
