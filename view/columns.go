package view

import (
	"github.com/amonks/kaban/task"
	"golang.org/x/text/language"
)

// ColumnFor returns the tasks in status, in storage order.
func ColumnFor(collection task.Collection, status task.Status) []task.Task {
	column := []task.Task{}
	for _, t := range collection {
		if t.Status == status {
			column = append(column, t)
		}
	}
	return column
}

// Hidden is the set of statuses whose columns are not shown.
// The zero value hides nothing.
type Hidden map[task.Status]bool

// VisibleColumns returns the statuses of all that are not hidden, in the
// order of all.
func VisibleColumns(all []task.Status, hidden Hidden) []task.Status {
	visible := make([]task.Status, 0, len(all))
	for _, status := range all {
		if !hidden[status] {
			visible = append(visible, status)
		}
	}
	return visible
}

// Toggle flips the visibility of status and returns the new set.
// Hiding the last visible column is refused: the receiver is returned
// unchanged. h itself is never modified.
func (h Hidden) Toggle(status task.Status) Hidden {
	if !status.IsValid() {
		return h
	}
	next := make(Hidden, len(h)+1)
	for s, hidden := range h {
		if hidden {
			next[s] = true
		}
	}
	if next[status] {
		delete(next, status)
	} else {
		next[status] = true
	}
	if len(VisibleColumns(task.Statuses(), next)) == 0 {
		return h
	}
	return next
}

// Column is one rendered column.
type Column struct {
	Status task.Status
	Sort   SortSpec
	Tasks  []task.Task
}

// State is the transient view configuration of a board.
type State struct {
	Hidden Hidden
	Sorts  map[task.Status]SortSpec
	Locale language.Tag
}

// NewState returns the defaults: every column visible, newest first.
func NewState() State {
	return State{
		Hidden: Hidden{},
		Sorts:  map[task.Status]SortSpec{},
		Locale: DefaultLocale,
	}
}

// SortFor returns the sort spec of a column.
func (s State) SortFor(status task.Status) SortSpec {
	if spec, ok := s.Sorts[status]; ok {
		return spec
	}
	return DefaultSort()
}

// WithSort returns a copy of s with status sorted by spec.
func (s State) WithSort(status task.Status, spec SortSpec) State {
	sorts := make(map[task.Status]SortSpec, len(s.Sorts)+1)
	for k, v := range s.Sorts {
		sorts[k] = v
	}
	sorts[status] = spec
	s.Sorts = sorts
	return s
}

// WithToggled returns a copy of s with status's visibility flipped.
func (s State) WithToggled(status task.Status) State {
	s.Hidden = s.Hidden.Toggle(status)
	return s
}

// Visible returns the statuses currently shown.
func (s State) Visible() []task.Status {
	return VisibleColumns(task.Statuses(), s.Hidden)
}

// Columns derives every visible column from collection.
func (s State) Columns(collection task.Collection) []Column {
	statuses := s.Visible()
	columns := make([]Column, 0, len(statuses))
	for _, status := range statuses {
		spec := s.SortFor(status)
		columns = append(columns, Column{
			Status: status,
			Sort:   spec,
			Tasks:  SortTasksLocale(ColumnFor(collection, status), spec, s.Locale),
		})
	}
	return columns
}
