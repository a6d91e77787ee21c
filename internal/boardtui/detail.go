package boardtui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/amonks/kaban/internal/markdown"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/theme"
)

const noDescription = "No description provided."

type detailModel struct {
	task     task.Task
	theme    theme.Theme
	viewport viewport.Model
}

func newDetailModel() detailModel {
	return detailModel{viewport: viewport.New(0, 0)}
}

func (d *detailModel) setTask(item task.Task, t theme.Theme) {
	d.task = item
	d.theme = t
	d.refresh()
	d.viewport.GotoTop()
}

func (d *detailModel) resize(width, height int) {
	innerWidth := width - 8
	if innerWidth < 20 {
		innerWidth = 20
	}
	innerHeight := height - 8
	if innerHeight < 3 {
		innerHeight = 3
	}
	d.viewport.Width = innerWidth
	d.viewport.Height = innerHeight
	d.refresh()
}

func (d *detailModel) refresh() {
	d.viewport.SetContent(d.render())
}

func (d detailModel) render() string {
	if d.task.ID == "" {
		return ""
	}
	width := d.viewport.Width
	if width <= 0 {
		width = 60
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(d.task.Title),
		fmt.Sprintf("Status: %s", d.task.Status),
		fmt.Sprintf("Created on %s", d.task.CreationDate.Local().Format("2006-01-02")),
		"",
	}
	body := markdown.SafeRenderStyle(markdownStyle(d.theme), width, 0, []byte(d.task.Description))
	if body == nil {
		lines = append(lines, noDescription)
	} else {
		lines = append(lines, string(body))
	}
	return strings.Join(lines, "\n")
}

func markdownStyle(t theme.Theme) markdown.Style {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return markdown.ASCII
	}
	if t == theme.Light {
		return markdown.Light
	}
	return markdown.Dark
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = modeBoard
		return m, nil
	case "e":
		m.openEditForm()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail.viewport, cmd = m.detail.viewport.Update(msg)
	return m, cmd
}
