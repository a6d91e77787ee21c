package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/kaban/task"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	content, err := RenderTaskTOML(TaskData{})
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.HasPrefix(content, `title = ""`) {
		t.Fatalf("expected empty title first, got:\n%s", content)
	}
	if strings.Contains(content, "status =") {
		t.Fatalf("status should not be present for create, got:\n%s", content)
	}
	if !strings.Contains(content, "\n---\n") {
		t.Fatalf("expected front matter separator, got:\n%s", content)
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	existing := task.Task{
		ID:           "0193",
		Title:        `Say "hi"`,
		Status:       task.StatusInProgress,
		Description:  "Line one\n\n- item",
		CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}
	if !strings.Contains(content, `title = "Say \"hi\""`) {
		t.Fatalf("expected quoted title, got:\n%s", content)
	}
	if !strings.Contains(content, `status = "In Progress"`) {
		t.Fatalf("expected status line, got:\n%s", content)
	}
	if !strings.Contains(content, "---\nLine one\n\n- item\n") {
		t.Fatalf("expected description below separator, got:\n%s", content)
	}
}

func TestParseTaskTOML_RoundTrip(t *testing.T) {
	existing := task.Task{Title: "Plan trip", Status: task.StatusDone, Description: "pick **dates**"}
	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Title != "Plan trip" {
		t.Fatalf("expected title, got %q", parsed.Title)
	}
	if parsed.Status == nil || *parsed.Status != task.StatusDone {
		t.Fatalf("expected Done status, got %v", parsed.Status)
	}
	if parsed.Description != "pick **dates**" {
		t.Fatalf("expected description, got %q", parsed.Description)
	}
}

func TestParseTaskTOML_CreateHasNoStatus(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"  New  \"\n---\n")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Title != "New" {
		t.Fatalf("expected trimmed title, got %q", parsed.Title)
	}
	if parsed.Status != nil {
		t.Fatalf("expected no status, got %v", *parsed.Status)
	}
	if parsed.Description != "" {
		t.Fatalf("expected empty description, got %q", parsed.Description)
	}
}

func TestParseTaskTOML_StatusSpellings(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\nstatus = \"in-progress\"\n")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Status == nil || *parsed.Status != task.StatusInProgress {
		t.Fatalf("expected In Progress, got %v", parsed.Status)
	}
}

func TestParseTaskTOML_Errors(t *testing.T) {
	cases := map[string]struct {
		content string
		want    error
	}{
		"blank title":    {"title = \"   \"\n---\n", task.ErrEmptyTitle},
		"missing title":  {"---\nbody\n", task.ErrEmptyTitle},
		"long title":     {"title = \"" + strings.Repeat("x", task.MaxTitleLength+1) + "\"\n---\n", task.ErrTitleTooLong},
		"unknown status": {"title = \"x\"\nstatus = \"later\"\n---\n", task.ErrInvalidStatus},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseTaskTOML(tc.content); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := ParseTaskTOML("title = \n---\n"); err == nil {
		t.Fatal("expected TOML syntax error")
	}
}

func TestCommandSplitsArguments(t *testing.T) {
	t.Setenv(EditorEnv, "code --wait")
	name, args := Command()
	if name != "code" || len(args) != 1 || args[0] != "--wait" {
		t.Fatalf("expected code [--wait], got %s %v", name, args)
	}

	t.Setenv(EditorEnv, "")
	if name, _ := Command(); name != DefaultEditor {
		t.Fatalf("expected default editor, got %s", name)
	}
}

func TestEditTaskRunsEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'title = \"Edited\"\\nstatus = \"done\"\\n---\\nNew body\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv(EditorEnv, script)

	parsed, err := EditTask(&task.Task{Title: "Before", Status: task.StatusToDo})
	if err != nil {
		t.Fatalf("EditTask failed: %v", err)
	}
	if parsed.Title != "Edited" || parsed.Description != "New body" {
		t.Fatalf("unexpected result %+v", parsed)
	}
	if parsed.Status == nil || *parsed.Status != task.StatusDone {
		t.Fatalf("expected Done, got %v", parsed.Status)
	}
}

func TestEditReportsEditorFailure(t *testing.T) {
	t.Setenv(EditorEnv, "false")
	if _, err := EditTask(nil); err == nil || !strings.Contains(err.Error(), "status 1") {
		t.Fatalf("expected exit status error, got %v", err)
	}
}
