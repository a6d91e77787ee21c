package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/logging"
	"github.com/amonks/kaban/task"
	"github.com/charmbracelet/log"
)

func newTestBridge(t *testing.T) (*Bridge, *kv.Memory, *bytes.Buffer) {
	t.Helper()
	store := kv.NewMemory()
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{Level: log.DebugLevel})
	return New(store, WithLogger(logger)), store, &buf
}

func mustNewTask(t *testing.T, title, description string) task.Task {
	t.Helper()
	created, err := task.New(title, description, time.Now())
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return created
}

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	bridge, _, logs := newTestBridge(t)

	collection := bridge.Load()

	if collection == nil || len(collection) != 0 {
		t.Fatalf("expected empty collection, got %#v", collection)
	}
	if logs.Len() != 0 {
		t.Errorf("expected no log output on first run, got %q", logs.String())
	}
}

func TestLoad_NotJSONIsEmpty(t *testing.T) {
	bridge, store, logs := newTestBridge(t)
	store.Set(TasksKey, "not json")

	collection := bridge.Load()

	if len(collection) != 0 {
		t.Fatalf("expected empty collection, got %d tasks", len(collection))
	}
	if !strings.Contains(logs.String(), "could not load tasks") {
		t.Errorf("expected corruption to be logged, got %q", logs.String())
	}
}

func TestDecode_RejectsShapeMismatch(t *testing.T) {
	valid := `{"id":"a","title":"A","description":"","status":"To Do","creationDate":"2026-01-02T03:04:05Z"}`
	cases := map[string]string{
		"array root":      `[]`,
		"missing tasks":   `{"items":[]}`,
		"tasks not array": `{"tasks":"nope"}`,
		"null tasks":      `{"tasks":null}`,
		"task not object": `{"tasks":[1]}`,
		"missing field":   `{"tasks":[{"id":"a","title":"A","status":"To Do","creationDate":"2026-01-02T03:04:05Z"}]}`,
		"unknown status":  `{"tasks":[{"id":"a","title":"A","description":"","status":"Blocked","creationDate":"2026-01-02T03:04:05Z"}]}`,
		"bad date":        `{"tasks":[{"id":"a","title":"A","description":"","status":"Done","creationDate":"yesterday"}]}`,
		"empty id":        `{"tasks":[{"id":"","title":"A","description":"","status":"Done","creationDate":"2026-01-02T03:04:05Z"}]}`,
		"duplicate ids":   `{"tasks":[` + valid + `,` + valid + `]}`,
		"truncated":       `{"tasks":[` + valid,
		"number title":    `{"tasks":[{"id":"a","title":7,"description":"","status":"Done","creationDate":"2026-01-02T03:04:05Z"}]}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(input)); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestDecode_ReportsPath(t *testing.T) {
	input := `{"tasks":[{"id":"a","title":"A","description":"","status":"Blocked","creationDate":"2026-01-02T03:04:05Z"}]}`

	err := Validate([]byte(input))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if ve.Path != "tasks.0.status" {
		t.Errorf("expected path tasks.0.status, got %q", ve.Path)
	}
}

func TestDecode_AcceptsEmptyTitle(t *testing.T) {
	input := `{"tasks":[{"id":"a","title":"","description":"","status":"Done","creationDate":"2026-01-02T03:04:05Z"}]}`

	collection, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("expected edited-to-empty titles to load, got %v", err)
	}
	if len(collection) != 1 {
		t.Fatalf("expected 1 task, got %d", len(collection))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	bridge, _, _ := newTestBridge(t)

	a := mustNewTask(t, "Buy milk", "")
	b := mustNewTask(t, "Write report", "Q3 draft\nwith **markdown**")
	b.Status = task.StatusInProgress
	original := task.Collection{a, b}

	if err := bridge.Save(original); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := bridge.Load()

	if !reflect.DeepEqual(loaded, original) {
		t.Fatalf("round trip mismatch:\n got  %#v\n want %#v", loaded, original)
	}
}

func TestSave_EmptyCollectionWritesEmptyArray(t *testing.T) {
	bridge, store, _ := newTestBridge(t)

	if err := bridge.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	value, _, _ := store.Get(TasksKey)
	var doc map[string]any
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	tasks, ok := doc["tasks"].([]any)
	if !ok || len(tasks) != 0 {
		t.Fatalf("expected empty tasks array, got %q", value)
	}
}

func TestSave_WireLayout(t *testing.T) {
	bridge, store, _ := newTestBridge(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	collection := task.Collection{{
		ID:           "abc",
		Title:        "Buy milk",
		Description:  "",
		Status:       task.StatusInProgress,
		CreationDate: created,
	}}

	if err := bridge.Save(collection); err != nil {
		t.Fatalf("save: %v", err)
	}

	value, _, _ := store.Get(TasksKey)
	for _, want := range []string{`"id": "abc"`, `"status": "In Progress"`, `"creationDate": "2026-01-02T03:04:05Z"`, `"description": ""`} {
		if !strings.Contains(value, want) {
			t.Errorf("expected stored value to contain %s, got %s", want, value)
		}
	}
}

func TestSave_ReportsWriteFailure(t *testing.T) {
	bridge, store, _ := newTestBridge(t)
	store.FailWrites = errors.New("quota exceeded")

	err := bridge.Save(task.Collection{mustNewTask(t, "Buy milk", "")})

	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected write failure to be returned, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	bridge, store, _ := newTestBridge(t)

	if _, err := bridge.Inspect(); err != nil {
		t.Fatalf("expected missing key to inspect cleanly, got %v", err)
	}

	store.Set(TasksKey, `{"tasks":"nope"}`)
	if _, err := bridge.Inspect(); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}
