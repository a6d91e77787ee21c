package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/kaban/internal/listflags"
	"github.com/amonks/kaban/internal/ui"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/view"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board as text columns",
	Long: `Print the board as text columns, one section per status.

Use --hide to leave out a column; at least one column must stay visible.
Use "kaban tui" for the interactive board.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

var (
	boardHide []string
	boardSort listflags.Sort
)

// errLastColumn is returned when every column would be hidden.
var errLastColumn = errors.New("at least one column must stay visible")

func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.Flags().StringArrayVar(&boardHide, "hide", nil, "Hide a column (repeatable)")
	listflags.AddSortFlags(boardCmd, &boardSort)
}

func runBoard(cmd *cobra.Command, args []string) error {
	spec, err := view.ParseSortSpec(boardSort.Key, boardSort.Order)
	if err != nil {
		return err
	}
	state, err := boardState(boardHide, spec)
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		state.Locale = a.locale
		all := a.store.All()
		lengths := task.NewIDIndex(all).PrefixLengths()
		fmt.Fprint(cmd.OutOrStdout(), formatBoard(state.Columns(all), lengths, ui.HighlightID))
		return nil
	})
}

// boardState builds a view with the named columns hidden and every column
// sorted by spec.
func boardState(hide []string, spec view.SortSpec) (view.State, error) {
	state := view.NewState()
	for _, status := range task.Statuses() {
		state = state.WithSort(status, spec)
	}

	for _, name := range hide {
		status, err := task.ParseStatus(name)
		if err != nil {
			return view.State{}, err
		}
		if state.Hidden[status] {
			continue
		}
		state = state.WithToggled(status)
		if !state.Hidden[status] {
			return view.State{}, errLastColumn
		}
	}
	return state, nil
}

func formatBoard(columns []view.Column, prefixLengths map[string]int, highlight func(string, int) string) string {
	var b strings.Builder
	for i, column := range columns {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%d) - %s\n", column.Status, len(column.Tasks), column.Sort.Label())
		if len(column.Tasks) == 0 {
			b.WriteString("  No tasks\n")
			continue
		}

		for _, item := range column.Tasks {
			id := highlight(item.ID, ui.PrefixLength(prefixLengths, item.ID))
			fmt.Fprintf(&b, "  %s  %s\n", id, ui.TruncateTableCell(item.Title))
		}
	}
	return b.String()
}
