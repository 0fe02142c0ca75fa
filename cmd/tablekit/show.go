package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

type showOptions struct {
	sorts      []string
	selects    []string
	selectAll  bool
	jsonOutput bool
	theme      string
	width      int
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render a table after replaying sort and selection requests",
		Long: `Render a table definition once.

Sort requests are applied in order, so passing the same column twice
reverses it. Selections are applied after sorting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sorts, "sort", "s", nil, "Sort by column key (repeatable)")
	cmd.Flags().StringArrayVar(&opts.selects, "select", nil, "Toggle the row with this key (repeatable)")
	cmd.Flags().BoolVar(&opts.selectAll, "select-all", false, "Select every row")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the table state as JSON")
	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Colour theme (default, dark, light)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width for full-width tables (defaults to the terminal width)")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, path string, opts *showOptions) error {
	loaded, err := loadTable(cmd, root, "show", path, opts.theme)
	if err != nil {
		return err
	}
	def := loaded.def

	tableOpts := def.Options()
	tableOpts.Logger = loaded.log
	ctrl := table.New(tableOpts, def.Rows())

	for _, column := range opts.sorts {
		field, ok := tableOpts.Fields.Lookup(table.FieldKey(column))
		if !ok {
			return newCommandError("show", fmt.Sprintf("sorting by %q", column), fmt.Errorf("unknown column"), "Use one of the field keys from the definition.")
		}
		if !field.Sortable {
			loaded.log.Warn("column is not sortable", "column", column)
		}
		ctrl.SortBy(field.Key)
	}

	if (len(opts.selects) > 0 || opts.selectAll) && !def.HasCheckboxes {
		return newCommandError("show", "selecting rows", fmt.Errorf("table has no checkboxes"), "Set has_checkboxes: true in the definition.")
	}
	for _, key := range opts.selects {
		if !hasRow(ctrl, table.RowKey(key)) {
			return newCommandError("show", fmt.Sprintf("selecting row %q", key), fmt.Errorf("unknown row key"), "")
		}
		ctrl.ToggleRow(table.RowKey(key))
	}
	if opts.selectAll {
		ctrl.SelectAll()
	}

	snap := ctrl.Snapshot()
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}
	ctx := components.DefaultContext().
		WithTheme(loaded.theme).
		WithWidth(width).
		WithMaxCellWidth(def.MaxColumnWidth)

	fmt.Fprintln(cmd.OutOrStdout(), components.NewTable(snap).ViewWithContext(ctx))
	return nil
}

func hasRow(ctrl *table.Controller, key table.RowKey) bool {
	for _, row := range ctrl.Rows() {
		if row.Key == key {
			return true
		}
	}
	return false
}
