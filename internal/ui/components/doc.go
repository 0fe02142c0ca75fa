// Package components provides the theme-aware building blocks used to draw
// tables in the terminal.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme, err := components.ThemeByName("dark")
//	ctx := components.DefaultContext().WithTheme(theme).WithWidth(120)
//	output := components.NewTable(controller.Snapshot()).ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically.
//
// # Components
//
//   - Text: styled text, used for captions and hints
//   - Badge: the selection summary under a table
//   - Checkbox: row and header selection boxes
//   - SortIndicator: the ▲ ▼ ↕ marker next to sortable column labels
//   - Table: a full frame rendered from a table.Snapshot
//
// Styling is composed from StyleFunc values such as Background,
// Foreground and Typography, which read colours from the theme at render
// time.
package components
