package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantSelection
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := PaddingX(1)(b.ComputeStyle(theme), theme)

	switch b.variant {
	case BadgeVariantSuccess:
		return Background(PaletteSuccess)(style, theme)
	case BadgeVariantSelection:
		return Background(PaletteSelection)(style, theme)
	default:
		return Background(PaletteNeutral)(style, theme)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SelectionBadge summarises how many rows are selected.
func SelectionBadge(selected, total int) *Badge {
	variant := BadgeVariantSelection
	switch {
	case selected == 0:
		variant = BadgeVariantDefault
	case selected == total:
		variant = BadgeVariantSuccess
	}
	return NewBadge(formatSelection(selected, total)).WithVariant(variant)
}
