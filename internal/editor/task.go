package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/amonks/kaban/task"
)

// TaskData is what the edit template shows.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Status is the task's display status (only for updates).
	Status string
	// Description is the markdown description, written below the separator.
	Description string
}

// DataFromTask fills TaskData from an existing task.
func DataFromTask(t task.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Status:      string(t.Status),
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # To Do, In Progress, Done
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders data as the text shown in the editor: TOML
// front matter, a "---" line, then the description.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask is the result of an editing session.
type ParsedTask struct {
	Title string
	// Status is nil when the front matter has no status line.
	Status      *task.Status
	Description string
}

type frontMatter struct {
	Title  string  `toml:"title"`
	Status *string `toml:"status"`
}

// ParseTaskTOML parses editor output. The title is trimmed and must be
// valid; a status line, when present, must name a status.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	head, body := splitFrontmatter(content)

	var fm frontMatter
	if _, err := toml.Decode(head, &fm); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := &ParsedTask{
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimRight(strings.TrimLeft(body, "\n"), "\n"),
	}
	if err := task.ValidateTitleInput(parsed.Title); err != nil {
		return nil, err
	}
	if fm.Status != nil {
		status, err := task.ParseStatus(*fm.Status)
		if err != nil {
			return nil, err
		}
		parsed.Status = &status
	}
	return parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditTask opens the editor on existing, or on a blank task when existing
// is nil, and returns what the user saved.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	data := TaskData{}
	if existing != nil {
		data = DataFromTask(*existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor pre-filled with data.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "kaban-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}
	return ParseTaskTOML(string(edited))
}
