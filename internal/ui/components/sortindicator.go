package components

import "github.com/alexisbeaulieu97/tablekit/internal/table"

// Sort indicator glyphs.
const (
	SortGlyphAscending  = "▲"
	SortGlyphDescending = "▼"
	SortGlyphIdle       = "↕"
)

// SortIndicator shows whether a column header sorts, and in which direction.
type SortIndicator struct {
	BaseComponent
	sortable  bool
	direction table.Direction
}

// NewSortIndicator builds the indicator for field under the current sort.
func NewSortIndicator(field table.Field, sort table.SortState) *SortIndicator {
	direction := table.SortNone
	if sort.Column == field.Key {
		direction = sort.Direction()
	}
	return &SortIndicator{
		BaseComponent: NewBaseComponent(),
		sortable:      field.Sortable,
		direction:     direction,
	}
}

// View renders the indicator.
func (s *SortIndicator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the indicator with the given theme context.
// Non-sortable columns render nothing.
func (s *SortIndicator) ViewWithContext(ctx RenderContext) string {
	glyph := s.Glyph()
	if glyph == "" {
		return ""
	}

	style := s.ComputeStyle(ctx.Theme)
	if s.direction == table.SortNone {
		style = Typography(TypographyVariantMuted)(style, ctx.Theme)
	} else {
		style = Foreground(PalettePrimary)(style, ctx.Theme)
	}
	return style.Render(glyph)
}

// Direction returns the direction the indicator shows.
func (s *SortIndicator) Direction() table.Direction {
	return s.direction
}

// Glyph returns the unstyled indicator text.
func (s *SortIndicator) Glyph() string {
	if !s.sortable {
		return ""
	}
	switch s.direction {
	case table.SortAscending:
		return SortGlyphAscending
	case table.SortDescending:
		return SortGlyphDescending
	default:
		return SortGlyphIdle
	}
}
