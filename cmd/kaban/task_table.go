package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/kaban/internal/markdown"
	"github.com/amonks/kaban/internal/ui"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/theme"
)

func formatTaskTable(items []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "TITLE"}, len(items))

	for _, item := range items {
		prefixLen := ui.PrefixLength(prefixLengths, item.ID)
		builder.AddRow([]string{
			highlight(item.ID, prefixLen),
			string(item.Status),
			ui.FormatDurationShort(now.Sub(item.CreationDate)),
			ui.TruncateTableCell(item.Title),
		})
	}

	return builder.String()
}

const taskDetailLineWidth = 80

// formatTaskDetail renders one task for `kaban show`.
func formatTaskDetail(item task.Task, highlight func(string) string, style markdown.Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:       %s\n", highlight(item.ID))
	fmt.Fprintf(&b, "Title:    %s\n", item.Title)
	fmt.Fprintf(&b, "Status:   %s\n", item.Status)
	fmt.Fprintf(&b, "Created:  %s\n", ui.FormatTimestamp(item.CreationDate))

	description := markdown.SafeRenderStyle(style, taskDetailLineWidth, 2, []byte(item.Description))
	if len(description) == 0 {
		b.WriteString("\nDescription: -\n")
		return b.String()
	}
	fmt.Fprintf(&b, "\nDescription:\n%s\n", description)
	return b.String()
}

// descriptionStyle picks the markdown style for the terminal: plain text
// when stdout cannot show color, otherwise the stored theme.
func descriptionStyle(a *app) markdown.Style {
	if !ui.ANSIEnabled() {
		return markdown.ASCII
	}
	if theme.Load(a.kv, nil) == theme.Light {
		return markdown.Light
	}
	return markdown.Dark
}
