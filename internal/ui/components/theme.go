package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour family:
//
//   - Base: the background or brand colour
//   - OnBase: text that reads well on Base
//   - Muted: a quieter variant of Base
//   - Contrast: an accent that stands out against Base
//
// All colours are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Surface   ColourSet
	Success   ColourSet
	Neutral   ColourSet
	Selection ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// BorderVariant picks a border from a BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
)

// TypographyScale contains the text presets used by tables.
type TypographyScale struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantTitle TypographyVariant = iota
	TypographyVariantHeader
	TypographyVariantBody
	TypographyVariantMuted
)

// Theme is an immutable styling theme for components. Build one with a
// constructor and pass it through RenderContext.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	// TableBorder is the border drawn around and inside tables.
	TableBorder BorderVariant
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.HiddenBorder(),
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle()
	return TypographyScale{
		Base:   base,
		Title:  base.Bold(true).Foreground(p.Primary.Base),
		Header: base.Bold(true).Foreground(p.Surface.OnBase),
		Body:   base.Foreground(p.Surface.OnBase),
		Muted:  base.Foreground(p.Neutral.Muted),
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#bfdbfe", "#1e3a8a"),
			Contrast: ac("#1d4ed8", "#93c5fd"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#1f2937"),
			OnBase:   ac("#111827", "#f3f4f6"),
			Muted:    ac("#f3f4f6", "#374151"),
			Contrast: ac("#2563eb", "#93c5fd"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#052e16"),
			Muted:    ac("#bbf7d0", "#14532d"),
			Contrast: ac("#15803d", "#86efac"),
		},
		Neutral: ColourSet{
			Base:     ac("#e5e7eb", "#4b5563"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#6b7280", "#9ca3af"),
			Contrast: ac("#374151", "#d1d5db"),
		},
		Selection: ColourSet{
			Base:     ac("#dbeafe", "#1e3a8a"),
			OnBase:   ac("#1e3a8a", "#dbeafe"),
			Muted:    ac("#eff6ff", "#172554"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
	}

	return Theme{
		Name:        "default",
		Palette:     palette,
		Borders:     defaultBorders(),
		Typography:  defaultTypography(palette),
		TableBorder: BorderVariantRounded,
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#94a3b8", "#64748b"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	theme.Palette.Selection = ColourSet{
		Base:     ac("#1e3a8a", "#172554"),
		OnBase:   ac("#dbeafe", "#bfdbfe"),
		Muted:    ac("#1e40af", "#1e3a8a"),
		Contrast: ac("#93c5fd", "#93c5fd"),
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.TableBorder = BorderVariantNormal
	return theme
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"dark":    DarkTheme,
	"light":   LightTheme,
}

// ThemeNames lists the registered theme names in order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName resolves a theme by its registered name. An empty name
// selects the default theme.
func ThemeByName(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultTheme(), nil
	}
	build, ok := themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return build(), nil
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeader:
		return typo.Header
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSelection PaletteSlot = func(p Palette) ColourSet { return p.Selection }
)

// Background applies a semantic background colour and the matching foreground.
//
// Example:
//
//	hint := MutedText("3 selected").WithAppliers(Background(PaletteSelection))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// PaddingX pads both sides horizontally by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}
