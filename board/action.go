package board

import "github.com/amonks/kaban/task"

// Action is a mutation request. The set of actions is closed: only the
// four types in this file implement it.
type Action interface {
	action()
}

// CreateAction adds a task in the To Do stage.
type CreateAction struct {
	Title       string
	Description string
}

// DeleteAction removes a task permanently.
type DeleteAction struct {
	ID string
}

// EditAction replaces a task's title and description.
type EditAction struct {
	ID          string
	Title       string
	Description string
}

// TransitionAction moves a task to another stage.
type TransitionAction struct {
	ID     string
	Status task.Status
}

func (CreateAction) action()     {}
func (DeleteAction) action()     {}
func (EditAction) action()       {}
func (TransitionAction) action() {}

// Result reports what a dispatched action did.
type Result struct {
	// Applied is false when the action was refused (empty title, unknown
	// ID, invalid status). Refused actions change nothing.
	Applied bool

	// Task is the created or modified task when Applied is true.
	// For deletes it is the removed task.
	Task task.Task
}
