// Package dragdrop turns a drag gesture into a status transition.
//
// The machine has two states. Idle becomes Dragging when a card is picked
// up, and Dragging returns to Idle on a drop (which moves the card) or a
// cancel (which does not). A card waiting for delete confirmation cannot
// be picked up.
package dragdrop

import (
	"errors"
	"fmt"

	"github.com/amonks/kaban/task"
)

var (
	// ErrPendingDelete is returned when a drag starts on a card awaiting
	// delete confirmation.
	ErrPendingDelete = errors.New("task is awaiting delete confirmation")

	// ErrAlreadyDragging is returned when a drag starts during another drag.
	ErrAlreadyDragging = errors.New("a drag is already in progress")

	// ErrNoTask is returned when a drag starts without a task ID.
	ErrNoTask = errors.New("no task to drag")
)

// Mutator applies the store mutations a gesture can trigger.
// *board.Store satisfies it.
type Mutator interface {
	Transition(id string, status task.Status)
	Delete(id string)
}

// State names the machine's state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Machine tracks one pointer's drag and the board's delete confirmations.
// It is not safe for concurrent use; drive it from the UI event loop.
type Machine struct {
	mutator Mutator

	state    State
	dragging string

	over    task.Status
	hasOver bool

	pendingDelete map[string]bool
}

// New returns an idle machine dispatching to m.
func New(m Mutator) *Machine {
	return &Machine{mutator: m, pendingDelete: make(map[string]bool)}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Dragged returns the ID of the card being dragged.
func (m *Machine) Dragged() (string, bool) {
	if m.state != Dragging {
		return "", false
	}
	return m.dragging, true
}

// BeginDrag picks up the card with the given ID.
func (m *Machine) BeginDrag(id string) error {
	switch {
	case id == "":
		return ErrNoTask
	case m.state == Dragging:
		return ErrAlreadyDragging
	case m.pendingDelete[id]:
		return fmt.Errorf("%w: %s", ErrPendingDelete, id)
	}
	m.state = Dragging
	m.dragging = id
	return nil
}

// Hover records that the drag is over the column for status.
// It has no effect while idle.
func (m *Machine) Hover(status task.Status) {
	if m.state != Dragging {
		return
	}
	m.over = status
	m.hasOver = true
}

// Leave clears the hovered column.
func (m *Machine) Leave() {
	m.over = ""
	m.hasOver = false
}

// Over returns the column currently signalling a candidate drop.
func (m *Machine) Over() (task.Status, bool) {
	if m.state != Dragging || !m.hasOver {
		return "", false
	}
	return m.over, true
}

// DropOn ends the drag on the column for status and transitions the
// dragged card there. Dropping on the card's own column is a legal
// same-status transition. It reports the dragged ID and whether a
// transition was dispatched; dropping while idle does nothing.
func (m *Machine) DropOn(status task.Status) (string, bool) {
	if m.state != Dragging {
		return "", false
	}
	id := m.dragging
	m.reset()
	m.mutator.Transition(id, status)
	return id, true
}

// Cancel abandons the drag without a mutation.
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.state = Idle
	m.dragging = ""
	m.Leave()
}

// RequestDelete marks a card as awaiting delete confirmation. If that card
// is being dragged, the drag is cancelled.
func (m *Machine) RequestDelete(id string) {
	if id == "" {
		return
	}
	if m.state == Dragging && m.dragging == id {
		m.reset()
	}
	m.pendingDelete[id] = true
}

// PendingDelete reports whether a card is awaiting delete confirmation.
func (m *Machine) PendingDelete(id string) bool {
	return m.pendingDelete[id]
}

// ConfirmDelete deletes a card that is awaiting confirmation.
// It reports whether a delete was dispatched.
func (m *Machine) ConfirmDelete(id string) bool {
	if !m.pendingDelete[id] {
		return false
	}
	delete(m.pendingDelete, id)
	m.mutator.Delete(id)
	return true
}

// CancelDelete clears a pending delete confirmation.
func (m *Machine) CancelDelete(id string) {
	delete(m.pendingDelete, id)
}

// Retain forgets cards that are no longer in c: their delete marks are
// cleared and a drag of a missing card is cancelled.
func (m *Machine) Retain(c task.Collection) {
	for id := range m.pendingDelete {
		if c.IndexOf(id) < 0 {
			delete(m.pendingDelete, id)
		}
	}
	if m.state == Dragging && c.IndexOf(m.dragging) < 0 {
		m.reset()
	}
}
