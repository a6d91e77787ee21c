// Package persist keeps the task collection in a durable key-value store.
//
// The whole collection is written under a single key on every save, as
// {"tasks": [...]}. Loading never fails: a missing key is a first run and a
// corrupt value is logged and replaced by an empty collection, so a bad
// file can never stop the board from opening.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/logging"
	"github.com/amonks/kaban/task"
	"github.com/charmbracelet/log"
)

// TasksKey is the key the collection is stored under.
const TasksKey = "tasks"

// ErrCorrupt marks a stored value that cannot be read back as a collection.
var ErrCorrupt = errors.New("stored tasks are corrupt")

// document is the persisted layout.
type document struct {
	Tasks task.Collection `json:"tasks"`
}

// Bridge round-trips the task collection through a kv.Store.
type Bridge struct {
	store  kv.Store
	logger *log.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used to report corrupt state.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a bridge over store.
func New(store kv.Store, opts ...Option) *Bridge {
	b := &Bridge{store: store, logger: logging.Discard()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load reads the stored collection.
// It returns an empty collection when nothing is stored or the stored
// value is corrupt; the latter is logged.
func (b *Bridge) Load() task.Collection {
	collection, err := b.Inspect()
	if err != nil {
		b.logger.Error("could not load tasks, starting empty", "err", err)
		return task.Collection{}
	}
	return collection
}

// Inspect reads the stored collection and reports why it was rejected.
// A missing key is not an error.
func (b *Bridge) Inspect() (task.Collection, error) {
	value, ok, err := b.store.Get(TasksKey)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if !ok {
		return task.Collection{}, nil
	}
	return Decode([]byte(value))
}

// Save writes the whole collection, replacing the stored value.
func (b *Bridge) Save(collection task.Collection) error {
	data, err := Encode(collection)
	if err != nil {
		return err
	}
	if err := b.store.Set(TasksKey, string(data)); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// Encode serializes a collection in the persisted layout.
func Encode(collection task.Collection) ([]byte, error) {
	if collection == nil {
		collection = task.Collection{}
	}
	data, err := json.MarshalIndent(document{Tasks: collection}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Decode parses and validates a persisted value.
// Every failure wraps ErrCorrupt.
func Decode(data []byte) (task.Collection, error) {
	if err := validateShape(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := task.ValidateCollection(doc.Tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if doc.Tasks == nil {
		doc.Tasks = task.Collection{}
	}
	return doc.Tasks, nil
}

// Validate reports whether data is a readable persisted collection.
func Validate(data []byte) error {
	_, err := Decode(data)
	return err
}
