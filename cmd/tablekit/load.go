package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

// loadedTable is a validated definition plus what the commands need to
// render it.
type loadedTable struct {
	def   *config.Definition
	theme components.Theme
	log   *logger.Logger
}

func loadTable(cmd *cobra.Command, root *rootFlags, operation, path, themeName string) (*loadedTable, error) {
	if err := validateTablePath(path); err != nil {
		return nil, newCommandError(operation, "locating table definition", err, "Pass the path to a YAML table definition.")
	}

	theme, err := components.ThemeByName(themeName)
	if err != nil {
		return nil, newCommandError(operation, "selecting theme", err, "")
	}

	log, err := root.newLogger(cmd)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "")
	}

	def, err := config.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "loading table definition", err, "Every field needs a key and label, and every row a unique key.")
	}

	log.Debug("table loaded", "path", path, "fields", len(def.Fields), "rows", len(def.Data))
	return &loadedTable{def: def, theme: theme, log: log}, nil
}
