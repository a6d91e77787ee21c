// Package board holds the authoritative task collection.
//
// A Store applies mutations one at a time. Each accepted mutation is
// written through to the persistence bridge before subscribers are
// notified, so anything that re-renders on notification sees state that is
// already durable. Refused mutations (empty title, unknown ID) are silent:
// they neither write nor notify.
package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/amonks/kaban/internal/logging"
	internalstrings "github.com/amonks/kaban/internal/strings"
	"github.com/amonks/kaban/task"
	"github.com/charmbracelet/log"
)

// Persister is the durable side of the store.
type Persister interface {
	Load() task.Collection
	Save(task.Collection) error
}

// Listener receives the post-mutation collection.
type Listener func(task.Collection)

// Store is the single source of truth for the board's tasks.
//
// Dispatch may be called from several goroutines. Listeners run one
// mutation at a time, in mutation order, and must not dispatch themselves.
type Store struct {
	mu sync.Mutex
	// notifying is held from the end of a mutation until its listeners
	// return, so the next mutation's listeners wait their turn.
	notifying sync.Mutex

	tasks     task.Collection
	persister Persister
	logger    *log.Logger
	now       func() time.Time

	listeners  map[int]Listener
	nextListen int
	lastErr    error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New loads the collection from persister and returns a store owning it.
func New(persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		logger:    logging.Discard(),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = persister.Load().Clone()
	return s
}

// All returns a copy of the current collection in creation order.
func (s *Store) All() task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Clone()
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Find(id)
}

// Resolve expands a unique ID prefix to a full task ID.
func (s *Store) Resolve(prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.NewIDIndex(s.tasks).Resolve(prefix)
}

// Err returns the error from the most recent persistence write, or nil if
// it succeeded.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers fn to be called after every accepted mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Create adds a task. It reports false, changing nothing, when the title
// is empty after trimming.
func (s *Store) Create(title, description string) (task.Task, bool) {
	result := s.Dispatch(CreateAction{Title: title, Description: description})
	return result.Task, result.Applied
}

// Delete removes the task with the given ID. Unknown IDs are ignored.
func (s *Store) Delete(id string) {
	s.Dispatch(DeleteAction{ID: id})
}

// Edit replaces the title and description of a task. Unknown IDs are
// ignored. The title is not re-validated.
func (s *Store) Edit(id, title, description string) {
	s.Dispatch(EditAction{ID: id, Title: title, Description: description})
}

// Transition moves a task to status. Unknown IDs and invalid statuses are
// ignored; moving a task to its current status is accepted.
func (s *Store) Transition(id string, status task.Status) {
	s.Dispatch(TransitionAction{ID: id, Status: status})
}

// Dispatch applies an action, persists the result and notifies listeners.
func (s *Store) Dispatch(a Action) Result {
	s.mu.Lock()
	next, result := s.apply(a)
	if !result.Applied {
		s.mu.Unlock()
		s.logger.Debug("action refused", "action", describe(a))
		return result
	}

	s.tasks = next
	if err := s.persister.Save(next.Clone()); err != nil {
		s.lastErr = err
		s.logger.Error("could not save tasks", "action", describe(a), "err", err)
	} else {
		s.lastErr = nil
	}
	listeners := s.snapshotListeners()
	snapshot := s.tasks.Clone()
	s.notifying.Lock()
	s.mu.Unlock()
	defer s.notifying.Unlock()

	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
	return result
}

// apply computes the collection after a. It never modifies s.tasks.
func (s *Store) apply(a Action) (task.Collection, Result) {
	switch a := a.(type) {
	case nil:
		return nil, Result{}

	case CreateAction:
		created, err := task.New(a.Title, a.Description, s.now())
		if err != nil {
			return nil, Result{}
		}
		next := append(s.tasks.Clone(), created)
		return next, Result{Applied: true, Task: created}

	case DeleteAction:
		i := s.tasks.IndexOf(a.ID)
		if i < 0 {
			return nil, Result{}
		}
		removed := s.tasks[i]
		next := make(task.Collection, 0, len(s.tasks)-1)
		next = append(next, s.tasks[:i]...)
		next = append(next, s.tasks[i+1:]...)
		return next, Result{Applied: true, Task: removed}

	case EditAction:
		i := s.tasks.IndexOf(a.ID)
		if i < 0 {
			return nil, Result{}
		}
		next := s.tasks.Clone()
		next[i].Title = internalstrings.ValidUTF8(a.Title)
		next[i].Description = task.CleanText(a.Description)
		return next, Result{Applied: true, Task: next[i]}

	case TransitionAction:
		i := s.tasks.IndexOf(a.ID)
		if i < 0 || !a.Status.IsValid() {
			return nil, Result{}
		}
		next := s.tasks.Clone()
		next[i].Status = a.Status
		return next, Result{Applied: true, Task: next[i]}

	default:
		panic(fmt.Sprintf("board: unknown action %T", a))
	}
}

// snapshotListeners returns listeners in subscription order.
func (s *Store) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextListen; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	return listeners
}

func describe(a Action) string {
	switch a := a.(type) {
	case CreateAction:
		return "create"
	case DeleteAction:
		return "delete " + a.ID
	case EditAction:
		return "edit " + a.ID
	case TransitionAction:
		return fmt.Sprintf("transition %s to %s", a.ID, a.Status)
	default:
		return fmt.Sprintf("%T", a)
	}
}
