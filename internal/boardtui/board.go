// Package boardtui is the interactive terminal board.
package boardtui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/amonks/kaban/board"
	"github.com/amonks/kaban/dragdrop"
	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/logging"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/theme"
	"github.com/amonks/kaban/view"
)

type mode int

const (
	modeBoard mode = iota
	modeForm
	modeDetail
	modeHelp
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// Options configures the board.
type Options struct {
	// Store is the task store the board reads and mutates. Required.
	Store *board.Store
	// Prefs stores the theme preference. Required.
	Prefs kv.Store
	// Locale collates titles. The zero value means English.
	Locale language.Tag
	// System detects the terminal's theme when none is stored.
	System func() theme.Theme
	// Logger receives diagnostics; stdout belongs to the board.
	Logger *log.Logger
}

type model struct {
	store       *board.Store
	prefs       kv.Store
	logger      *log.Logger
	changes     chan struct{}
	unsubscribe func()

	width  int
	height int
	mode   mode

	theme  theme.Theme
	styles styles

	view    view.State
	tasks   task.Collection
	columns []view.Column
	focus   int
	cursor  map[task.Status]int

	drag  *dragdrop.Machine
	hover int

	form   formModel
	detail detailModel

	status      string
	statusLevel statusLevel
}

// Run shows the board until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil || opts.Prefs == nil {
		return errors.New("board store and preference store are required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(opts)
	defer m.unsubscribe()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	state := view.NewState()
	if opts.Locale != language.Und {
		state.Locale = opts.Locale
	}

	current := theme.Load(opts.Prefs, opts.System)

	m := model{
		store:   opts.Store,
		prefs:   opts.Prefs,
		logger:  logger,
		changes: make(chan struct{}, 1),
		theme:   current,
		styles:  newStyles(current),
		view:    state,
		cursor:  make(map[task.Status]int),
		drag:    dragdrop.New(opts.Store),
		form:    newFormModel(),
		detail:  newDetailModel(),
	}

	changes := m.changes
	m.unsubscribe = opts.Store.Subscribe(func(task.Collection) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	m.reload()
	return m
}

type tasksChangedMsg struct{}

func (m model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		<-changes
		return tasksChangedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tasksChangedMsg:
		m.reload()
		return m, m.waitForChange()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeHelp:
			return m.updateHelp(msg)
		}
		return m.handleBoardKey(msg.String())
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	if m.drag.State() == dragdrop.Dragging {
		return m.handleDragKey(key), nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
	case "h", "left":
		m.moveFocus(-1)
	case "l", "right":
		m.moveFocus(1)
	case "k", "up":
		m.moveCursor(-1)
	case "j", "down":
		m.moveCursor(1)
	case " ":
		m.beginDrag()
	case "enter":
		m.openDetail()
	case "n":
		if item, ok := m.selectedTask(); ok && m.drag.PendingDelete(item.ID) {
			m.drag.CancelDelete(item.ID)
			m.setStatus("", statusNone)
			break
		}
		m.openNewForm()
	case "esc":
		if item, ok := m.selectedTask(); ok && m.drag.PendingDelete(item.ID) {
			m.drag.CancelDelete(item.ID)
			m.setStatus("", statusNone)
		}
	case "e":
		m.openEditForm()
	case "x":
		if item, ok := m.selectedTask(); ok {
			m.drag.RequestDelete(item.ID)
			m.setStatus("Delete this task? y to confirm, n to cancel", statusInfo)
		}
	case "y":
		if item, ok := m.selectedTask(); ok && m.drag.ConfirmDelete(item.ID) {
			m.reload()
			m.setStatus(fmt.Sprintf("Deleted %q", item.Title), statusInfo)
		}
	case "s":
		m.cycleSort()
	case "1", "2", "3":
		m.toggleColumn(int(key[0] - '1'))
	case "t":
		m.toggleTheme()
	}
	return m, nil
}

func (m model) handleDragKey(key string) model {
	switch key {
	case "h", "left":
		m.moveHover(-1)
	case "l", "right":
		m.moveHover(1)
	case " ", "enter":
		m.drop()
	case "esc":
		m.drag.Cancel()
		m.setStatus("Move cancelled", statusInfo)
	}
	return m
}

func (m *model) reload() {
	m.tasks = m.store.All()
	m.drag.Retain(m.tasks)
	m.columns = m.view.Columns(m.tasks)
	m.clamp()
	if err := m.store.Err(); err != nil {
		m.setStatus(fmt.Sprintf("Could not save tasks: %v", err), statusError)
	}
}

func (m *model) clamp() {
	if m.focus >= len(m.columns) {
		m.focus = len(m.columns) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	if m.hover >= len(m.columns) {
		m.hover = len(m.columns) - 1
	}
	if m.hover < 0 {
		m.hover = 0
	}
	for _, column := range m.columns {
		index := m.cursor[column.Status]
		if index >= len(column.Tasks) {
			index = len(column.Tasks) - 1
		}
		if index < 0 {
			index = 0
		}
		m.cursor[column.Status] = index
	}
}

func (m model) focusedColumn() (view.Column, bool) {
	if m.focus < 0 || m.focus >= len(m.columns) {
		return view.Column{}, false
	}
	return m.columns[m.focus], true
}

func (m model) selectedTask() (task.Task, bool) {
	column, ok := m.focusedColumn()
	if !ok || len(column.Tasks) == 0 {
		return task.Task{}, false
	}
	index := m.cursor[column.Status]
	if index < 0 || index >= len(column.Tasks) {
		return task.Task{}, false
	}
	return column.Tasks[index], true
}

// selectTask focuses the card with id, if it is visible.
func (m *model) selectTask(id string) bool {
	for i, column := range m.columns {
		for j, item := range column.Tasks {
			if item.ID == id {
				m.focus = i
				m.cursor[column.Status] = j
				return true
			}
		}
	}
	return false
}

func (m *model) moveFocus(delta int) {
	if len(m.columns) == 0 {
		return
	}
	m.focus = clampIndex(m.focus+delta, len(m.columns))
}

func (m *model) moveCursor(delta int) {
	column, ok := m.focusedColumn()
	if !ok || len(column.Tasks) == 0 {
		return
	}
	m.cursor[column.Status] = clampIndex(m.cursor[column.Status]+delta, len(column.Tasks))
}

func (m *model) moveHover(delta int) {
	if len(m.columns) == 0 {
		return
	}
	m.hover = clampIndex(m.hover+delta, len(m.columns))
	m.drag.Hover(m.columns[m.hover].Status)
}

func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}

func (m *model) beginDrag() {
	item, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.drag.BeginDrag(item.ID); err != nil {
		m.setStatus(dragRefusal(err), statusError)
		return
	}
	m.hover = m.focus
	m.drag.Hover(m.columns[m.hover].Status)
	m.setStatus(fmt.Sprintf("Moving %q: h/l to choose a column, space to drop, esc to cancel", item.Title), statusInfo)
}

func dragRefusal(err error) string {
	switch {
	case errors.Is(err, dragdrop.ErrPendingDelete):
		return "Confirm or cancel the delete before moving this task"
	default:
		return fmt.Sprintf("Cannot move task: %v", err)
	}
}

func (m *model) drop() {
	status, ok := m.drag.Over()
	if !ok {
		m.drag.Cancel()
		return
	}
	id, dropped := m.drag.DropOn(status)
	if !dropped {
		return
	}
	m.reload()
	m.selectTask(id)
	if m.statusLevel != statusError {
		m.setStatus(fmt.Sprintf("Moved to %s", status), statusInfo)
	}
}

func (m *model) cycleSort() {
	column, ok := m.focusedColumn()
	if !ok {
		return
	}
	next := column.Sort.Next()
	m.view = m.view.WithSort(column.Status, next)
	m.reload()
	m.setStatus(fmt.Sprintf("%s: %s", column.Status, next.Label()), statusInfo)
}

func (m *model) toggleColumn(index int) {
	statuses := task.Statuses()
	if index < 0 || index >= len(statuses) {
		return
	}
	status := statuses[index]
	wasHidden := m.view.Hidden[status]
	focused, hasFocus := m.focusedColumn()

	m.view = m.view.WithToggled(status)
	if m.view.Hidden[status] == wasHidden {
		m.setStatus("At least one column must stay visible", statusError)
		return
	}
	m.reload()
	if hasFocus {
		for i, column := range m.columns {
			if column.Status == focused.Status {
				m.focus = i
			}
		}
	}
}

func (m *model) toggleTheme() {
	next := m.theme.Opposite()
	m.theme = next
	m.styles = newStyles(next)
	if err := theme.Save(m.prefs, next); err != nil {
		m.logger.Warn("could not save theme", "err", err)
		m.setStatus(fmt.Sprintf("Could not save theme: %v", err), statusError)
		return
	}
	m.setStatus(fmt.Sprintf("Theme: %s", next), statusInfo)
}

func (m *model) openNewForm() {
	m.form.reset("", "", "")
	m.form.resize(m.width)
	m.mode = modeForm
}

func (m *model) openEditForm() {
	item, ok := m.selectedTask()
	if !ok {
		return
	}
	m.form.reset(item.ID, item.Title, item.Description)
	m.form.resize(m.width)
	m.mode = modeForm
}

func (m *model) openDetail() {
	item, ok := m.selectedTask()
	if !ok {
		return
	}
	m.detail.setTask(item, m.theme)
	m.detail.resize(m.width, m.height)
	m.mode = modeDetail
}

func (m *model) resize() {
	m.form.resize(m.width)
	m.detail.resize(m.width, m.height)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q", "enter":
		m.mode = modeBoard
	}
	return m, nil
}
