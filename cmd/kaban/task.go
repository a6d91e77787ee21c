package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/amonks/kaban/internal/editor"
	"github.com/amonks/kaban/internal/listflags"
	"github.com/amonks/kaban/internal/ui"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/view"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task to the To Do column",
	Long: `Add a task to the To Do column.

Multiple arguments are joined with spaces to form the title.

With no title or description, opens $EDITOR on a blank task when
running interactively. Use --edit to open the editor anyway, or
--no-edit to never open it.`,
	RunE: runAdd,
}

var (
	addDescription string
	addEdit        bool
	addNoEdit      bool
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks grouped by status.

Within each status, tasks are ordered by --sort and --order.
Titles are compared using the locale from the config file.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listStatus string
	listSort   listflags.Sort
	listJSON   bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a task's title or description",
	Long: `Change a task's title or description.

Without --title or --description, opens $EDITOR on the task when
running interactively; the editor can also change the status.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editEdit        bool
	editNoEdit      bool
)

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a task to another column",
	Long: `Move a task to another column.

Status may be any of: todo, in-progress, done
(the display names "To Do", "In Progress" and "Done" also work).`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, editCmd, moveCmd, deleteCmd)
	addDescriptionFlagAliases(addCmd, editCmd)

	// add flags
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no title)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// list flags
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only list tasks with this status")
	listflags.AddSortFlags(listCmd, &listSort)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	// edit flags
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimRight(string(input), "\r\n")
	return value, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	description, err := resolveDescriptionFromStdin(addDescription, cmd.InOrStdin())
	if err != nil {
		return err
	}

	hasFlags := len(args) > 0 || cmd.Flags().Changed("description")
	if shouldUseEditor(hasFlags, addEdit, addNoEdit, editor.IsInteractive()) {
		parsed, err := editor.EditTaskWithData(editor.TaskData{Title: title, Description: description})
		if err != nil {
			return err
		}
		title, description = parsed.Title, parsed.Description
	}

	if err := task.ValidateTitleInput(title); err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		created, ok := a.store.Create(title, description)
		if !ok {
			return errors.New("task was not created")
		}
		if err := a.saved(); err != nil {
			return err
		}
		lengths := task.NewIDIndex(a.store.All()).PrefixLengths()
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", ui.HighlightID(created.ID, ui.PrefixLength(lengths, created.ID)), created.Title)
		return nil
	})
}

func runList(cmd *cobra.Command, args []string) error {
	spec, err := view.ParseSortSpec(listSort.Key, listSort.Order)
	if err != nil {
		return err
	}

	statuses := task.Statuses()
	if listStatus != "" {
		status, err := task.ParseStatus(listStatus)
		if err != nil {
			return err
		}
		statuses = []task.Status{status}
	}

	return withApp(cmd, func(a *app) error {
		all := a.store.All()
		items := listTasks(all, statuses, spec, a.locale)
		if listJSON {
			return encodeJSON(cmd.OutOrStdout(), items)
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
			return nil
		}
		lengths := task.NewIDIndex(all).PrefixLengths()
		fmt.Fprint(cmd.OutOrStdout(), formatTaskTable(items, lengths, ui.HighlightID, time.Now()))
		return nil
	})
}

// listTasks returns the tasks with the given statuses, grouped by status
// in the order given and sorted by spec within each group.
func listTasks(all task.Collection, statuses []task.Status, spec view.SortSpec, locale language.Tag) []task.Task {
	items := make([]task.Task, 0, len(all))
	for _, status := range statuses {
		items = append(items, view.SortTasksLocale(view.ColumnFor(all, status), spec, locale)...)
	}
	return items
}

func runShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		items := make([]task.Task, 0, len(args))
		for _, arg := range args {
			id, err := a.store.Resolve(arg)
			if err != nil {
				return err
			}
			item, _ := a.store.Get(id)
			items = append(items, item)
		}

		if showJSON {
			if len(items) == 1 {
				return encodeJSON(cmd.OutOrStdout(), items[0])
			}
			return encodeJSON(cmd.OutOrStdout(), items)
		}

		lengths := task.NewIDIndex(a.store.All()).PrefixLengths()
		highlight := func(id string) string {
			return ui.HighlightID(id, ui.PrefixLength(lengths, id))
		}
		style := descriptionStyle(a)
		for i, item := range items {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(item, highlight, style))
		}
		return nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	titleSet := cmd.Flags().Changed("title")
	descriptionSet := cmd.Flags().Changed("description")
	useEditor := shouldUseEditor(titleSet || descriptionSet, editEdit, editNoEdit, editor.IsInteractive())
	if !titleSet && !descriptionSet && !useEditor {
		return errors.New("nothing to change: pass --title or --description")
	}

	title := strings.TrimSpace(editTitle)
	if titleSet {
		if err := task.ValidateTitleInput(title); err != nil {
			return err
		}
	}
	description, err := resolveDescriptionFromStdin(editDescription, cmd.InOrStdin())
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		id, err := a.store.Resolve(args[0])
		if err != nil {
			return err
		}
		current, _ := a.store.Get(id)
		if !titleSet {
			title = current.Title
		}
		if !descriptionSet {
			description = current.Description
		}
		status := current.Status

		if useEditor {
			data := editor.DataFromTask(current)
			data.Title, data.Description = title, description
			parsed, err := editor.EditTaskWithData(data)
			if err != nil {
				return err
			}
			title, description = parsed.Title, parsed.Description
			if parsed.Status != nil {
				status = *parsed.Status
			}
		}

		a.store.Edit(id, title, description)
		if status != current.Status {
			a.store.Transition(id, status)
		}
		if err := a.saved(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", id)
		return nil
	})
}

func runMove(cmd *cobra.Command, args []string) error {
	status, err := task.ParseStatus(args[1])
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		id, err := a.store.Resolve(args[0])
		if err != nil {
			return err
		}
		a.store.Transition(id, status)
		if err := a.saved(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s\n", id, status)
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		// Resolve every prefix before deleting anything.
		resolved := make([]string, 0, len(args))
		for _, arg := range args {
			id, err := a.store.Resolve(arg)
			if err != nil {
				return err
			}
			resolved = append(resolved, id)
		}

		for _, id := range resolved {
			a.store.Delete(id)
			if err := a.saved(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", id)
		}
		return nil
	})
}

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
