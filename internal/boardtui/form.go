package boardtui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/kaban/task"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

// formModel edits a new or existing task. An empty editingID means a new
// task.
type formModel struct {
	editingID   string
	title       textinput.Model
	description textarea.Model
	field       formField
	err         string
}

func newFormModel() formModel {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = task.MaxTitleLength
	title.Placeholder = "What needs doing?"

	description := textarea.New()
	description.Prompt = ""
	description.ShowLineNumbers = false
	description.Placeholder = "Optional details (markdown)"
	description.SetHeight(5)

	return formModel{title: title, description: description}
}

func (f *formModel) reset(id, title, description string) {
	f.editingID = id
	f.err = ""
	f.title.Reset()
	f.title.SetValue(title)
	f.title.CursorEnd()
	f.description.Reset()
	f.description.SetValue(description)
	f.focusField(fieldTitle)
}

func (f *formModel) focusField(field formField) {
	f.field = field
	if field == fieldTitle {
		f.description.Blur()
		f.title.Focus()
		return
	}
	f.title.Blur()
	f.description.Focus()
}

func (f *formModel) resize(width int) {
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 80 {
		inputWidth = 80
	}
	f.title.Width = inputWidth
	f.description.SetWidth(inputWidth)
}

func (f formModel) heading() string {
	if f.editingID == "" {
		return "New task"
	}
	return "Edit task"
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modeBoard
			return m, nil
		case "tab", "shift+tab":
			if m.form.field == fieldTitle {
				m.form.focusField(fieldDescription)
			} else {
				m.form.focusField(fieldTitle)
			}
			return m, nil
		case "ctrl+s":
			m.submitForm()
			return m, nil
		case "enter":
			if m.form.field == fieldTitle {
				m.submitForm()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.form.field == fieldTitle {
		m.form.title, cmd = m.form.title.Update(msg)
	} else {
		m.form.description, cmd = m.form.description.Update(msg)
	}
	return m, cmd
}

func (m *model) submitForm() {
	title := strings.TrimSpace(m.form.title.Value())
	if err := task.ValidateTitleInput(title); err != nil {
		m.form.err = capitalize(err.Error())
		return
	}
	description := m.form.description.Value()

	if m.form.editingID == "" {
		created, ok := m.store.Create(title, description)
		if !ok {
			m.form.err = "Could not add task"
			return
		}
		m.mode = modeBoard
		m.reload()
		if !m.selectTask(created.ID) {
			m.setStatus(fmt.Sprintf("Added %q to %s (hidden)", created.Title, created.Status), statusInfo)
			return
		}
		if m.statusLevel != statusError {
			m.setStatus(fmt.Sprintf("Added %q", created.Title), statusInfo)
		}
		return
	}

	id := m.form.editingID
	m.store.Edit(id, title, description)
	m.mode = modeBoard
	m.reload()
	m.selectTask(id)
	if m.statusLevel != statusError {
		m.setStatus("Task saved", statusInfo)
	}
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
