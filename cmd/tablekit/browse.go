package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/tui"
)

type browseOptions struct {
	theme string
}

// runProgram is swapped in tests.
var runProgram = func(cmd *cobra.Command, model tea.Model) error {
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := program.Run()
	return err
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore a table interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Colour theme (default, dark, light)")

	return cmd
}

func runBrowse(cmd *cobra.Command, root *rootFlags, path string, opts *browseOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting interactive view", errors.New("output is not a terminal"), "Use 'tablekit show' for non-interactive output.")
	}

	loaded, err := loadTable(cmd, root, "browse", path, opts.theme)
	if err != nil {
		return err
	}

	tableOpts := loaded.def.Options()
	tableOpts.Logger = loaded.log
	tableOpts.OnCheck = func(row table.Row) {
		loaded.log.Info("row checked", "key", string(row.Key))
	}
	tableOpts.OnUncheck = func(row table.Row) {
		loaded.log.Info("row unchecked", "key", string(row.Key))
	}

	model := tui.NewModel(tableOpts, loaded.def.Rows(), tui.Options{
		Theme:        loaded.theme,
		MaxCellWidth: loaded.def.MaxColumnWidth,
	})

	if err := runProgram(cmd, model); err != nil {
		return newCommandError("browse", "running interactive view", err, "")
	}
	return nil
}
