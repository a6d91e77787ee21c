package board

import (
	"testing"
	"time"

	"github.com/amonks/kaban/task"
)

// recordingPersister keeps every saved collection.
type recordingPersister struct {
	initial task.Collection
	saves   []task.Collection
	err     error
}

func (p *recordingPersister) Load() task.Collection {
	return p.initial
}

func (p *recordingPersister) Save(c task.Collection) error {
	p.saves = append(p.saves, c)
	return p.err
}

// stepClock returns a clock that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

func newTestStore(t *testing.T) (*Store, *recordingPersister) {
	t.Helper()
	persister := &recordingPersister{}
	store := New(persister, WithClock(stepClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))))
	return store, persister
}

func mustCreate(t *testing.T, store *Store, title, description string) task.Task {
	t.Helper()
	created, ok := store.Create(title, description)
	if !ok {
		t.Fatalf("failed to create task %q", title)
	}
	return created
}
