// Package listflags registers the flags shared by commands that print
// sorted tasks.
package listflags

import "github.com/spf13/cobra"

// Sort holds the values of the shared --sort and --order flags.
type Sort struct {
	Key   string
	Order string
}

// AddSortFlags adds --sort and --order to cmd, defaulting to newest first.
func AddSortFlags(cmd *cobra.Command, target *Sort) {
	if target == nil {
		target = &Sort{}
	}
	cmd.Flags().StringVar(&target.Key, "sort", "created", "Sort key (created, title)")
	cmd.Flags().StringVar(&target.Order, "order", "desc", "Sort order (asc, desc)")
}
